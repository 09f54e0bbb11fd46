package group_services

import "github.com/m04kA/SMC-SalonService/internal/domain"

// groupResult результат работы алгоритма группировки
type groupResult struct {
	services            []domain.Service
	possibleSpecialists []domain.Specialist
	noSpecialist        bool
}

// buildGroups разбивает выбранные услуги на группы, каждую из которых может
// выполнить один мастер, жадно добирая максимальную группу на каждом шаге
//
// Алгоритм детерминирован: мастера перебираются в порядке каталога, при
// равном размере подмножества побеждает первый найденный мастер (значение
// не перезаписывается при равенстве). Жадный выбор не гарантирует минимум
// групп в общем случае, но на практике выборка клиента мала (до 8 услуг),
// и предсказуемость здесь важнее оптимальности
func buildGroups(
	selected []domain.Service,
	specialists []domain.Specialist,
	capabilities domain.CapabilitySet,
) []groupResult {
	groups := make([]groupResult, 0)

	// remaining сохраняет исходный порядок выбора клиента
	remaining := make([]domain.Service, len(selected))
	copy(remaining, selected)

	for len(remaining) > 0 {
		best := bestSubset(remaining, specialists, capabilities)

		// Никто не умеет выполнить ни одну из оставшихся услуг:
		// складываем весь остаток в одну группу без валидного мастера,
		// UI покажет клиенту "нет доступного мастера"
		if len(best) == 0 {
			groups = append(groups, groupResult{
				services:            remaining,
				possibleSpecialists: specialists,
				noSpecialist:        true,
			})
			break
		}

		// Для найденной группы пересчитываем полный список мастеров,
		// умеющих выполнить КАЖДУЮ её услугу, а не только победителя шага
		possible := specialistsForAll(best, specialists, capabilities)
		if len(possible) == 0 {
			// Защитный fallback: по построению best найден хотя бы один мастер
			possible = specialists
		}

		groups = append(groups, groupResult{
			services:            best,
			possibleSpecialists: possible,
		})

		remaining = subtract(remaining, best)
	}

	return groups
}

// bestSubset находит наибольшее подмножество remaining, которое умеет
// выполнить один мастер; при равенстве размеров побеждает первый мастер
func bestSubset(
	remaining []domain.Service,
	specialists []domain.Specialist,
	capabilities domain.CapabilitySet,
) []domain.Service {
	var best []domain.Service

	for _, spec := range specialists {
		subset := make([]domain.Service, 0, len(remaining))
		for _, svc := range remaining {
			if capabilities.CanPerform(spec.ID, svc.ID) {
				subset = append(subset, svc)
			}
		}

		// Строгое неравенство: при равном размере первый найденный остается
		if len(subset) > len(best) {
			best = subset
		}
	}

	return best
}

// specialistsForAll возвращает всех мастеров, умеющих выполнить каждую услугу группы
func specialistsForAll(
	group []domain.Service,
	specialists []domain.Specialist,
	capabilities domain.CapabilitySet,
) []domain.Specialist {
	serviceIDs := make([]int64, len(group))
	for i, svc := range group {
		serviceIDs[i] = svc.ID
	}

	result := make([]domain.Specialist, 0)
	for _, spec := range specialists {
		if capabilities.CanPerformAll(spec.ID, serviceIDs) {
			result = append(result, spec)
		}
	}

	return result
}

// subtract удаляет услуги taken из remaining, сохраняя порядок remaining
func subtract(remaining, taken []domain.Service) []domain.Service {
	takenIDs := make(map[int64]struct{}, len(taken))
	for _, svc := range taken {
		takenIDs[svc.ID] = struct{}{}
	}

	rest := make([]domain.Service, 0, len(remaining)-len(taken))
	for _, svc := range remaining {
		if _, ok := takenIDs[svc.ID]; !ok {
			rest = append(rest, svc)
		}
	}

	return rest
}
