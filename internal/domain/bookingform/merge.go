package bookingform

import "github.com/m04kA/SkyTrips-AdminService/internal/domain"

// Load возвращает форму для сохранённого бронирования, для nil пустую форму
func Load(existing *domain.Booking) State {
	return Merge(New(), existing)
}

// Merge накладывает сохранённую запись на текущее состояние формы.
//
// Непустые допустимые значения записи заменяют значения формы. Отсутствующие
// и недопустимые берутся из New(), кроме полей с keepPrevious (pnr), которые
// сохраняют значение prev. Отсутствующие addons/prices заменяются целиком
// значениями по умолчанию, частичные дополняются недостающими ключами.
func Merge(prev State, existing *domain.Booking) State {
	out := prev.clone()
	if existing == nil {
		return out
	}

	template := New()
	for i := range bindings {
		b := &bindings[i]
		value := *b.recordValue(existing)
		target := b.formValue(&out)

		switch {
		case value != "" && (b.valid == nil || b.valid(value)):
			*target = value
		case b.fallback == keepPrevious:
			// значение prev уже в out
		default:
			*target = *b.formValue(&template)
		}
	}

	if existing.ID != 0 {
		out.ID = existing.ID
	}
	out.Addons = completeAddons(existing.Addons)
	out.Prices = completePrices(existing.Prices)
	out.ShowStopover = prev.ShowStopover || out.StopoverLocation != ""

	return out
}
