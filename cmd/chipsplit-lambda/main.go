// chipsplit-lambda serves the chip split solver behind an AWS Lambda
// function URL. The request body carries the same fields as a YAML game
// config, as JSON, plus an optional "mode" (calculate or distribute) and
// optional "custom_values".
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/cardfelt/chipsplit/chips"
	"github.com/cardfelt/chipsplit/config"
	"github.com/cardfelt/chipsplit/report"
	"github.com/cardfelt/chipsplit/solver"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type splitResponse struct {
	Mode           string             `json:"mode"`
	PerPlayer      map[string]int     `json:"per_player"`
	Values         map[string]float64 `json:"values"`
	ValuePerPlayer float64            `json:"value_per_player"`
	TotalUnused    int                `json:"total_unused"`
	UnusedValue    float64            `json:"unused_value"`
	Efficiency     float64            `json:"efficiency"`
	Report         string             `json:"report"`
}

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}
	resp, code, err := solve(ctx, body)
	if err != nil {
		return errResp(code, err.Error())
	}
	out, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(out)}, nil
}

func solve(ctx context.Context, body string) (*splitResponse, int, error) {
	if !gjson.Valid(body) {
		return nil, 400, errors.New("invalid JSON body")
	}
	mode := gjson.Get(body, "mode").String()
	if mode == "" {
		mode = "calculate"
	}
	if mode != "calculate" && mode != "distribute" {
		return nil, 400, fmt.Errorf("unknown mode %q", mode)
	}
	cfg, err := configFromJSON(body)
	if err != nil {
		return nil, 400, err
	}
	set, err := cfg.ChipSet()
	if err != nil {
		return nil, 400, err
	}
	log.Info().
		Str("mode", mode).
		Int("players", cfg.NumPlayers).
		Int("colors", set.NumColors()).
		Msg("lambda solve request")

	sv := solver.New(set, cfg.NumPlayers, solver.Options{Tolerance: cfg.ToleranceCents()})

	var res *chips.DistributionResult
	switch mode {
	case "calculate":
		catalog := chips.DefaultCatalog()
		if vals := gjson.Get(body, "custom_values").Array(); len(vals) > 0 {
			cents := make([]chips.Cents, len(vals))
			for i, v := range vals {
				cents[i] = chips.FromDollars(v.Float())
			}
			catalog, err = chips.NewCatalog(cents)
			if err != nil {
				return nil, 400, err
			}
		}
		res, err = sv.Calculate(ctx, catalog, cfg.BuyInCents())
	case "distribute":
		var assignment chips.ValueAssignment
		assignment, err = cfg.FixedValues()
		if err != nil {
			return nil, 400, err
		}
		res, err = sv.Distribute(ctx, assignment, cfg.BuyInCents())
	}
	if err != nil {
		return nil, 422, err
	}

	values := make(map[string]float64, len(res.Colors))
	perPlayer := make(map[string]int, len(res.Colors))
	for _, color := range res.Colors {
		values[color] = res.Assignment[color].Dollars()
		perPlayer[color] = res.PerPlayer[color]
	}
	return &splitResponse{
		Mode:           mode,
		PerPlayer:      perPlayer,
		Values:         values,
		ValuePerPlayer: res.ValuePerPlayer.Dollars(),
		TotalUnused:    res.TotalChipsUnused,
		UnusedValue:    res.UnusedValue.Dollars(),
		Efficiency:     res.Efficiency,
		Report:         report.Render(res),
	}, 200, nil
}

func configFromJSON(body string) (*config.GameConfig, error) {
	cfg := &config.GameConfig{
		BuyInPerPerson: gjson.Get(body, "buy_in_per_person").Float(),
		NumPlayers:     int(gjson.Get(body, "num_players").Int()),
		Tolerance:      gjson.Get(body, "tolerance").Float(),
		ChipColors:     map[string]config.ChipColor{},
	}
	var parseErr error
	gjson.Get(body, "chip_colors").ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.Type == gjson.Number:
			cfg.ChipColors[key.String()] = config.ChipColor{Count: int(value.Int())}
		case value.IsObject():
			cc := config.ChipColor{Count: int(value.Get("count").Int())}
			if v := value.Get("value"); v.Exists() {
				val := v.Float()
				cc.Value = &val
			}
			cfg.ChipColors[key.String()] = cc
		default:
			parseErr = fmt.Errorf("chip color %s: expected a count or {count, value}", key.String())
			return false
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
