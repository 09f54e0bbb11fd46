package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// maxSubmissionRetries количество повторов всей отправки после гонки
// (коллизия кода записи или конкурентная approved-запись на той же неделе)
const maxSubmissionRetries = 1

// groupPlan подготовленный план одной группы: справочные данные разрешены,
// время собрано. Строится до транзакции, чтобы ошибки валидации и каталога
// не тратили serializable-попытку
type groupPlan struct {
	serviceTitle    string
	specialist      *domain.Specialist
	startTime       time.Time
	appointmentTime types.TimeString
	durationMinutes int
	totalPrice      float64
}

// UseCase use case создания записей: одна отправка формы = одна запись
// на каждую группу услуг
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	blacklistRepo   BlacklistRepository
	closedDayRepo   ClosedDayRepository
	txManager       TransactionManager
	codeGen         CodeGenerator
	timeProvider    TimeProvider
	logger          Logger
	rateLimitPerDay int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	blacklistRepo BlacklistRepository,
	closedDayRepo ClosedDayRepository,
	txManager TransactionManager,
	codeGen CodeGenerator,
	rateLimitPerDay int,
	logger Logger,
) *UseCase {
	if rateLimitPerDay <= 0 {
		rateLimitPerDay = domain.DefaultRateLimitPerDay
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		blacklistRepo:   blacklistRepo,
		closedDayRepo:   closedDayRepo,
		txManager:       txManager,
		codeGen:         codeGen,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		rateLimitPerDay: rateLimitPerDay,
	}
}

// Execute выполняет use case создания записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: phone=%s, groups=%d", req.CustomerPhone, len(req.Groups))

	// 1. Валидация: имя, телефон, структура групп
	name, phone, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем справочные данные и проверяем нерабочие дни
	plans, err := uc.buildPlans(ctx, req)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 3. Проверки допуска и вставка выполняются одной serializable-транзакцией.
	// При гонке (конкурентная approved-запись на той же неделе или коллизия
	// кода) вся отправка повторяется один раз: повторный прогон видит
	// зафиксированную конкурентом строку и понижает статус группы до pending
	var created []*domain.Appointment
	for attempt := 0; ; attempt++ {
		created, err = uc.submit(ctx, name, phone, now, plans)
		if err == nil {
			break
		}

		if attempt < maxSubmissionRetries && isRaceError(err) {
			uc.logger.Warn("CreateAppointment: race detected, retrying submission: %v", err)
			continue
		}

		return nil, err
	}

	uc.logger.Info("CreateAppointment: created %d appointments for phone=%s", len(created), phone)

	return uc.buildResponse(created, plans), nil
}

// buildPlans разрешает услуги и мастеров групп по каталогу
// и проверяет, что салон открыт в даты групп
func (uc *UseCase) buildPlans(ctx context.Context, req *Request) ([]groupPlan, error) {
	services, err := uc.catalogRepo.ListServices(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	serviceByID := make(map[int64]domain.Service, len(services))
	for _, s := range services {
		serviceByID[s.ID] = s
	}

	specialists := make(map[int64]*domain.Specialist)
	checkedDates := make(map[string]struct{})

	plans := make([]groupPlan, 0, len(req.Groups))
	for i, group := range req.Groups {
		startTime, err := group.Time.OnDate(group.Date)
		if err != nil {
			uc.logger.Warn("CreateAppointment: group %d has invalid time: %v", i, err)
			return nil, fmt.Errorf("%w: group %d has invalid time: %v", ErrInvalidInput, i, err)
		}

		plan := groupPlan{
			appointmentTime: group.Time,
			startTime:       startTime,
		}

		titles := make([]string, 0, len(group.ServiceIDs))
		for _, serviceID := range group.ServiceIDs {
			service, ok := serviceByID[serviceID]
			if !ok {
				uc.logger.Warn("CreateAppointment: group %d: service id=%d not found", i, serviceID)
				return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, serviceID)
			}
			titles = append(titles, service.Title)
			plan.durationMinutes += service.DurationMinutes
			plan.totalPrice += service.Price
		}
		plan.serviceTitle = strings.Join(titles, ", ")

		specialist, ok := specialists[group.SpecialistID]
		if !ok {
			specialist, err = uc.catalogRepo.GetSpecialist(ctx, group.SpecialistID)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrSpecialistNotFound) {
					uc.logger.Warn("CreateAppointment: group %d: specialist id=%d not found", i, group.SpecialistID)
					return nil, fmt.Errorf("%w: id=%d", ErrSpecialistNotFound, group.SpecialistID)
				}
				uc.logger.Error("CreateAppointment: failed to get specialist id=%d: %v", group.SpecialistID, err)
				return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
			}
			specialists[group.SpecialistID] = specialist
		}

		if !specialist.IsActive {
			uc.logger.Warn("CreateAppointment: group %d: specialist id=%d is not active", i, group.SpecialistID)
			return nil, fmt.Errorf("%w: id=%d", ErrSpecialistInactive, group.SpecialistID)
		}
		plan.specialist = specialist

		dateKey := group.Date.Format(domain.DateFormat)
		if _, ok := checkedDates[dateKey]; !ok {
			closed, err := uc.closedDayRepo.IsClosed(ctx, group.Date)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to check closed day: %v", err)
				return nil, fmt.Errorf("%w: failed to check closed day: %v", ErrInternal, err)
			}
			if closed {
				uc.logger.Warn("CreateAppointment: group %d: salon is closed on %s", i, dateKey)
				return nil, fmt.Errorf("%w: %s", ErrSalonClosed, dateKey)
			}
			checkedDates[dateKey] = struct{}{}
		}

		plans = append(plans, plan)
	}

	return plans, nil
}

// submit выполняет проверки допуска и вставку записей в одной
// serializable-транзакции. Возвращает созданные записи в порядке групп
func (uc *UseCase) submit(
	ctx context.Context,
	name, phone string,
	now time.Time,
	plans []groupPlan,
) ([]*domain.Appointment, error) {
	var created []*domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		// 1. Чёрный список: точное совпадение нормализованного телефона
		blocked, err := uc.blacklistRepo.ExistsByPhone(txCtx, phone)
		if err != nil {
			return fmt.Errorf("%w: failed to check blacklist: %v", ErrInternal, err)
		}
		if blocked {
			return ErrBlocked
		}

		// 2. Лимит частоты: записи с этого телефона за последние 24 часа
		count, err := uc.appointmentRepo.CountCreatedSince(txCtx, phone, now.Add(-24*time.Hour))
		if err != nil {
			return fmt.Errorf("%w: failed to count recent appointments: %v", ErrInternal, err)
		}
		if count >= uc.rateLimitPerDay {
			return fmt.Errorf("%w: %d appointments in last 24h", ErrRateLimited, count)
		}

		// 3. Статус каждой группы определяется независимо: pending при
		// существующей pending/approved записи того же телефона у того же
		// мастера на той же неделе понедельник-воскресенье.
		// Запросы внутри транзакции видят вставки предыдущих групп этой же
		// отправки, поэтому вторая группа к тому же мастеру на той же
		// неделе тоже станет pending
		for i := range plans {
			plan := &plans[i]

			weekStart, weekEnd := domain.WeekWindow(plan.startTime)
			existing, err := uc.appointmentRepo.ListBlockingByPhoneSpecialistWithin(
				txCtx, phone, plan.specialist.ID, weekStart, weekEnd)
			if err != nil {
				return fmt.Errorf("%w: failed to check week duplicates: %v", ErrInternal, err)
			}

			status := domain.StatusApproved
			if len(existing) > 0 {
				status = domain.StatusPending
			}

			code, err := uc.codeGen.Generate()
			if err != nil {
				return fmt.Errorf("%w: failed to generate booking code: %v", ErrInternal, err)
			}

			apt := &domain.Appointment{
				CustomerName:    name,
				CustomerPhone:   phone,
				ServiceTitle:    plan.serviceTitle,
				SpecialistID:    plan.specialist.ID,
				SpecialistName:  plan.specialist.Name,
				StartTime:       plan.startTime,
				AppointmentTime: plan.appointmentTime,
				DurationMinutes: plan.durationMinutes,
				Status:          status,
				BookingCode:     code,
			}

			saved, err := uc.appointmentRepo.Create(txCtx, apt)
			if err != nil {
				if isRaceError(err) {
					return err
				}
				return fmt.Errorf("%w: group %d: %v", ErrPersistenceFailure, i, err)
			}

			created = append(created, saved)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBlocked) || errors.Is(err, ErrRateLimited) ||
			errors.Is(err, ErrInternal) || errors.Is(err, ErrPersistenceFailure) ||
			isRaceError(err) {
			return nil, err
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	return created, nil
}

// buildResponse собирает ответ из созданных записей, сохраняя порядок групп
func (uc *UseCase) buildResponse(created []*domain.Appointment, plans []groupPlan) *Response {
	appointments := make([]CreatedAppointment, 0, len(created))
	for i, apt := range created {
		appointments = append(appointments, CreatedAppointment{
			ID:              apt.ID,
			ServiceTitle:    apt.ServiceTitle,
			SpecialistID:    apt.SpecialistID,
			SpecialistName:  apt.SpecialistName,
			StartTime:       apt.StartTime,
			AppointmentTime: apt.AppointmentTime,
			DurationMinutes: apt.DurationMinutes,
			TotalPrice:      plans[i].totalPrice,
			Status:          string(apt.Status),
			BookingCode:     apt.BookingCode,
			CreatedAt:       apt.CreatedAt,
		})
	}

	return &Response{Appointments: appointments}
}

// isRaceError проверяет, что ошибка вызвана гонкой вставки:
// коллизия уникального индекса кода записи или конкурентная approved-запись
func isRaceError(err error) bool {
	return errors.Is(err, appointmentRepo.ErrBookingCodeTaken) ||
		errors.Is(err, appointmentRepo.ErrDuplicateWeekApproved)
}
