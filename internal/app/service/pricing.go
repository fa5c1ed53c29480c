package service

import (
	"fmt"
	"strings"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/pkg/logger"
)

// OptionView is one selectable option as the storefront sees it
type OptionView struct {
	ID        int64   `json:"id"`
	Label     string  `json:"label"`
	Price     float64 `json:"price"`
	IsDefault bool    `json:"isDefault"`
}

// OptionGroup is one configurable slot on a drone with its choices
type OptionGroup struct {
	Code    model.OptionGroupCode `json:"code"`
	Label   string                `json:"label"`
	Options []OptionView          `json:"options"`
}

// groupSpec fixes the presentation order and the storefront label of every
// add-on group.
type groupSpec struct {
	code  model.OptionGroupCode
	label string
	ids   func(*model.Drone) string
	def   func(*model.Drone) *int64
}

var groupSpecs = []groupSpec{
	{model.GroupReceiver, "Приймач", func(d *model.Drone) string { return d.RxOptionIDs }, func(d *model.Drone) *int64 { return d.RxDefaultID }},
	{model.GroupVTX, "Відеопередавач", func(d *model.Drone) string { return d.VtxOptionIDs }, func(d *model.Drone) *int64 { return d.VtxDefaultID }},
	{model.GroupCamera, "Камера", func(d *model.Drone) string { return d.CameraOptionIDs }, func(d *model.Drone) *int64 { return d.CameraDefaultID }},
	{model.GroupBattery, "Акумулятор", func(d *model.Drone) string { return d.BatteryOptionIDs }, func(d *model.Drone) *int64 { return d.BatteryDefaultID }},
	{model.GroupFiberSpool, "Котушка оптоволокна", func(d *model.Drone) string { return d.FiberSpoolOptionIDs }, func(d *model.Drone) *int64 { return d.FiberSpoolDefaultID }},
}

// resolveOptionGroups loads every non-empty option group of the drone in
// presentation order. A group whose id list decodes to nothing is omitted. A
// default id that is absent from the fetched options leaves the group without
// a marked default; selection then falls back to the first option.
func resolveOptionGroups(optionRepo repository.OptionRepository, drone *model.Drone) ([]OptionGroup, error) {
	var groups []OptionGroup
	for _, spec := range groupSpecs {
		ids := model.DecodeIDList(spec.ids(drone))
		if len(ids) == 0 {
			continue
		}

		options, err := optionRepo.FindByIDs(model.OptionTables[spec.code], ids)
		if err != nil {
			return nil, err
		}
		if len(options) == 0 {
			continue
		}

		defaultID := spec.def(drone)
		views := make([]OptionView, 0, len(options))
		for _, option := range options {
			views = append(views, OptionView{
				ID:        option.ID,
				Label:     option.Label,
				Price:     option.Price,
				IsDefault: defaultID != nil && option.ID == *defaultID,
			})
		}
		groups = append(groups, OptionGroup{
			Code:    spec.code,
			Label:   spec.label,
			Options: views,
		})
	}
	return groups, nil
}

// selectedOption picks the option a visitor's choice resolves to: their
// explicit pick when it is offered, otherwise the marked default, otherwise
// the first option of the group.
func selectedOption(group OptionGroup, picked *int64) OptionView {
	if picked != nil {
		for _, option := range group.Options {
			if option.ID == *picked {
				return option
			}
		}
	}
	for _, option := range group.Options {
		if option.IsDefault {
			return option
		}
	}
	return group.Options[0]
}

// totalPrice is the base price plus the resolved selection of every group
func totalPrice(base float64, groups []OptionGroup, selections map[model.OptionGroupCode]int64) float64 {
	total := base
	for _, group := range groups {
		var picked *int64
		if id, ok := selections[group.Code]; ok {
			picked = &id
		}
		total += selectedOption(group, picked).Price
	}
	return total
}

// QuoteRequest carries the visitor's configurator selections, keyed by group
// code. Missing groups fall back to the default option.
type QuoteRequest struct {
	Selections map[model.OptionGroupCode]int64 `json:"selections"`
}

// Quote is a priced configuration plus the ready-to-send order message.
type Quote struct {
	DroneID    string  `json:"droneId"`
	Model      string  `json:"model"`
	BasePrice  float64 `json:"basePrice"`
	TotalPrice float64 `json:"totalPrice"`
	Message    string  `json:"message"`
}

// buildQuote validates the selections against the drone's offered options and
// renders the order message the storefront hands to messengers and mailto
// links.
func buildQuote(optionRepo repository.OptionRepository, drone *model.Drone, req QuoteRequest) (*Quote, error) {
	groups, err := resolveOptionGroups(optionRepo, drone)
	if err != nil {
		return nil, err
	}

	offered := make(map[model.OptionGroupCode]map[int64]bool, len(groups))
	for _, group := range groups {
		ids := make(map[int64]bool, len(group.Options))
		for _, option := range group.Options {
			ids[option.ID] = true
		}
		offered[group.Code] = ids
	}
	for code, id := range req.Selections {
		if !offered[code][id] {
			logger.Warn("Rejected quote with unknown option", map[string]interface{}{
				"drone_id":  drone.ID,
				"group":     code,
				"option_id": id,
			})
			return nil, ErrInvalidOption
		}
	}

	total := totalPrice(drone.Price, groups, req.Selections)

	lines := []string{
		fmt.Sprintf("Дрон: %s", orFallback(drone.Model, "Без назви")),
		fmt.Sprintf("ID: %s", drone.ID),
		fmt.Sprintf("Розмір: %s дюймів", orFallback(fmt.Sprintf("%d", drone.Size), "N/A")),
		fmt.Sprintf("Тип зв’язку: %s", orFallback(drone.Connection, "N/A")),
		fmt.Sprintf("Базова ціна: %s грн", formatUAH(drone.Price)),
	}
	for _, group := range groups {
		var picked *int64
		if id, ok := req.Selections[group.Code]; ok {
			picked = &id
		}
		selected := selectedOption(group, picked)
		lines = append(lines, fmt.Sprintf("%s: %s (+%s грн)", group.Label, selected.Label, formatUAH(selected.Price)))
	}
	lines = append(lines, fmt.Sprintf("Разом: %s грн", formatUAH(total)))

	return &Quote{
		DroneID:    drone.ID,
		Model:      drone.Model,
		BasePrice:  drone.Price,
		TotalPrice: total,
		Message:    strings.Join(lines, "\n"),
	}, nil
}

func orFallback(value, fallback string) string {
	if value == "" || value == "0" {
		return fallback
	}
	return value
}

// formatUAH renders an amount the way uk-UA locale formatting does: thousands
// groups separated by a non-breaking space (U+00A0).
func formatUAH(amount float64) string {
	raw := fmt.Sprintf("%.0f", amount)
	negative := strings.HasPrefix(raw, "-")
	digits := strings.TrimPrefix(raw, "-")

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune('\u00a0')
		}
		b.WriteString(digits[i : i+3])
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
