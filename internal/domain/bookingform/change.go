package bookingform

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
)

// Префиксы имён полей доп. услуг во входных данных формы
const (
	AddonFieldPrefix = "addon-"
	PriceFieldPrefix = "price-"
)

// InputKind семантический тип поля ввода
type InputKind string

const (
	KindText     InputKind = "text"
	KindNumber   InputKind = "number"
	KindCheckbox InputKind = "checkbox"
)

// FieldChange одно изменение формы: AddonToggle, PriceEdit или ScalarEdit
type FieldChange interface {
	apply(s *State)
}

// AddonToggle выбор или снятие доп. услуги
type AddonToggle struct {
	Addon    domain.Addon
	Selected bool
}

func (c AddonToggle) apply(s *State) {
	if !c.Addon.IsValid() {
		return
	}
	s.Addons[c.Addon] = c.Selected
}

// PriceEdit цена доп. услуги, строка хранится как введена
type PriceEdit struct {
	Addon  domain.Addon
	Amount string
}

func (c PriceEdit) apply(s *State) {
	if !c.Addon.IsValid() {
		return
	}
	s.Prices[c.Addon] = c.Amount
}

// ScalarEdit значение скалярного поля по имени поля формы
type ScalarEdit struct {
	Field   string
	Value   string
	Numeric bool // приводить к числу, даже если поле не числовое
}

func (c ScalarEdit) apply(s *State) {
	b, ok := bindingsByForm[c.Field]
	if !ok {
		return
	}
	value := c.Value
	if b.numeric || c.Numeric {
		value = coerceNumber(value)
	}
	*b.formValue(s) = value
}

// ParseFieldChange разбирает сырое изменение поля по префиксу имени
func ParseFieldChange(name, raw string, kind InputKind) FieldChange {
	switch {
	case strings.HasPrefix(name, AddonFieldPrefix):
		return AddonToggle{
			Addon:    domain.Addon(strings.TrimPrefix(name, AddonFieldPrefix)),
			Selected: parseChecked(raw),
		}
	case strings.HasPrefix(name, PriceFieldPrefix):
		return PriceEdit{
			Addon:  domain.Addon(strings.TrimPrefix(name, PriceFieldPrefix)),
			Amount: raw,
		}
	default:
		return ScalarEdit{Field: name, Value: raw, Numeric: kind == KindNumber}
	}
}

// ApplyFieldChange применяет изменение к копии состояния.
// Неизвестные поля и доп. услуги игнорируются.
func ApplyFieldChange(s State, change FieldChange) State {
	out := s.clone()
	if change != nil {
		change.apply(&out)
	}
	return out
}

// ChoiceGroup группа взаимоисключающего выбора
type ChoiceGroup string

const (
	ChoiceContactType  ChoiceGroup = FieldContactType
	ChoiceCustomerType ChoiceGroup = FieldCustomerType
)

func (g ChoiceGroup) IsValid() bool {
	return g == ChoiceContactType || g == ChoiceCustomerType
}

// SetChoice задаёт existing/new для группы. Поля деталей не очищаются.
// Неизвестная группа или недопустимое значение возвращают состояние без изменений.
func SetChoice(s State, group ChoiceGroup, choice domain.PartyType) State {
	out := s.clone()
	if !choice.IsValid() {
		return out
	}
	switch group {
	case ChoiceContactType:
		out.ContactType = string(choice)
	case ChoiceCustomerType:
		out.CustomerType = string(choice)
	}
	return out
}

// SetShowStopover переключает видимость блока пересадки, значения остаются
func SetShowStopover(s State, on bool) State {
	out := s.clone()
	out.ShowStopover = on
	return out
}

// TODO: выбор существующего путешественника (SelectExistingTraveller(id)) пока не связан
// с состоянием формы, нужно поле идентификатора клиента в State и в таблице bookings.

func parseChecked(raw string) bool {
	if strings.EqualFold(strings.TrimSpace(raw), "on") {
		return true
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

// coerceNumber приводит ввод к сумме с двумя знаками, некорректный ввод даёт "0.00"
func coerceNumber(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return FormatAmount(decimal.Zero)
	}
	return FormatAmount(d)
}
