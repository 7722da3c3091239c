package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

// Write announces every table to Home Assistant, publishes its headline row
// as the sensor state and keeps one retained topic per row.
func (s *service) Write(ctx context.Context, tables []model.Table) error {
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.registerTable(table); err != nil {
			return fmt.Errorf("register %s: %w", table.Name, err)
		}
		if row, ok := table.HighlightRow(); ok {
			if err := s.publishJSON(s.tableTopic(table)+"/state", row); err != nil {
				return fmt.Errorf("state %s: %w", table.Name, err)
			}
		}
		for _, row := range table.Rows {
			if err := s.publishJSON(s.rowTopic(table, row), row); err != nil {
				return fmt.Errorf("row %s: %w", table.Name, err)
			}
		}
		s.logger.Debug("table published", zap.String("table", table.Name), zap.Int("rows", len(table.Rows)))
	}
	return nil
}

func (s *service) registerTable(table model.Table) error {
	return s.publishJSON(fmt.Sprintf("homeassistant/sensor/%s/config", s.sensorID(table)), s.registerMsg(table))
}

func (s *service) registerMsg(table model.Table) model.RegisterMessage {
	msg := model.RegisterMessage{
		Tilda:               s.tableTopic(table),
		Name:                table.Title,
		ID:                  s.sensorID(table),
		StateTopic:          "~/state",
		JSONAttributesTopic: "~/state",
		Device: model.RegisterDevice{
			Name:         "Tariff simulator",
			Identifiers:  []string{s.prefix},
			Model:        "tariff-simulator",
			Manufacturer: "anicoll",
		},
	}
	if col, ok := headlineColumn(table); ok {
		msg.ValueTemplate = fmt.Sprintf("{{ value_json.%s }}", col)
	}
	return msg
}

func (s *service) sensorID(table model.Table) string {
	return fmt.Sprintf("%s_%s", s.prefix, slug.Make(table.Name))
}

func (s *service) tableTopic(table model.Table) string {
	return fmt.Sprintf("%s/%s", s.prefix, slug.Make(table.Name))
}

func (s *service) rowTopic(table model.Table, row map[string]any) string {
	parts := make([]string, 0, len(table.Key))
	for _, col := range table.Key {
		parts = append(parts, fmt.Sprint(row[col]))
	}
	return fmt.Sprintf("%s/%s", s.tableTopic(table), slug.Make(strings.Join(parts, " ")))
}

func (s *service) publishJSON(topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	token := s.client.Publish(topic, 1, true, payload)
	if !token.WaitTimeout(time.Second * 5) {
		return fmt.Errorf("%s: %w", topic, ErrTimeout)
	}
	return token.Error()
}

// headlineColumn is the first text column of the summary, shown as the
// sensor value.
func headlineColumn(table model.Table) (string, bool) {
	row, ok := table.HighlightRow()
	if !ok {
		return "", false
	}
	for _, col := range table.Summary {
		if _, ok := row[col].(string); ok {
			return col, true
		}
	}
	return "", false
}
