package apifootball

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/player"
	"github.com/riskibarqy/fut-data/internal/domain/team"
	"github.com/riskibarqy/fut-data/internal/usecase"
)

// Provider adapts Client to usecase.FootballProvider.
type Provider struct {
	client    *Client
	validator *validator.Validate
}

var _ usecase.FootballProvider = (*Provider)(nil)

func NewProvider(client *Client) *Provider {
	return &Provider{client: client, validator: validator.New()}
}

func (p *Provider) Teams(ctx context.Context, league, season int) ([]team.Team, error) {
	raw, err := p.client.GetCached(ctx, "/teams", map[string]string{
		"league": strconv.Itoa(league),
		"season": strconv.Itoa(season),
	}, TeamsTTL)
	if err != nil {
		return nil, err
	}

	var items []teamItem
	if err := decodeResponse(raw, &items); err != nil {
		return nil, crerr.Wrap(err, "decode teams")
	}
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		out = append(out, team.Team{ID: item.Team.ID, Name: item.Team.Name})
	}
	return out, nil
}

func (p *Provider) Players(ctx context.Context, query usecase.PlayerQuery) ([]player.Player, error) {
	if err := p.validator.StructCtx(ctx, query); err != nil {
		return nil, crerr.Wrap(err, "validate player query")
	}

	params := map[string]string{
		"league": strconv.Itoa(query.League),
		"season": strconv.Itoa(query.Season),
		"page":   strconv.Itoa(query.Page),
		"search": query.Search,
	}
	if query.TeamID > 0 {
		params["team"] = strconv.Itoa(query.TeamID)
	}

	raw, err := p.client.GetCached(ctx, "/players", params, PlayersTTL)
	if err != nil {
		return nil, err
	}

	var items []playerItem
	if err := decodeResponse(raw, &items); err != nil {
		return nil, crerr.Wrap(err, "decode players")
	}
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		out = append(out, mapPlayer(item))
	}
	return out, nil
}

func (p *Provider) SearchCoaches(ctx context.Context, search string) ([]coach.Coach, error) {
	return p.coaches(ctx, map[string]string{"search": search})
}

func (p *Provider) CoachByID(ctx context.Context, id int) (coach.Coach, bool, error) {
	items, err := p.coaches(ctx, map[string]string{"id": strconv.Itoa(id)})
	if err != nil {
		return coach.Coach{}, false, err
	}
	if len(items) == 0 {
		return coach.Coach{}, false, nil
	}
	return items[0], true, nil
}

func (p *Provider) coaches(ctx context.Context, params map[string]string) ([]coach.Coach, error) {
	raw, err := p.client.GetCached(ctx, "/coachs", params, CoachesTTL)
	if err != nil {
		return nil, err
	}

	var items []coachItem
	if err := decodeResponse(raw, &items); err != nil {
		return nil, crerr.Wrap(err, "decode coaches")
	}
	out := make([]coach.Coach, 0, len(items))
	for _, item := range items {
		out = append(out, mapCoach(item))
	}
	return out, nil
}

type envelope struct {
	Response json.RawMessage `json:"response"`
}

// decodeResponse fills target from the response array. An unparsable body or
// a non-array response decodes as empty.
func decodeResponse(raw []byte, target any) error {
	var env envelope
	if sonic.Unmarshal(raw, &env) != nil {
		return nil
	}
	body := bytes.TrimSpace(env.Response)
	if len(body) == 0 || body[0] != '[' {
		return nil
	}
	return sonic.Unmarshal(body, target)
}
