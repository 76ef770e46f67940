package employee

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	employeeerrors "go-employees/internal/employee/errors"
	"go-employees/internal/events"
	"go-employees/internal/messaging/kafka"
	"go-employees/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const aggregateType = "employee"

type Service interface {
	List(ctx context.Context, params ListParams) (ListEmployeesResult, error)
	Export(ctx context.Context, params ListParams) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
	Departments(ctx context.Context) ([]string, error)
	Positions(ctx context.Context) ([]string, error)
	Statistics(ctx context.Context) (StatisticsResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	cache  *lookupCache
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		cache:  newLookupCache(rdb, l),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Second) },
		logger: l,
	}
}

func (s *service) List(ctx context.Context, params ListParams) (ListEmployeesResult, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	filter, page, limit := params.Normalize()
	l.Debug("list employees requested",
		zap.Int("page", page),
		zap.Int("limit", limit),
		zap.String("departemen", filter.Department),
		zap.String("status", filter.Status),
		zap.String("jabatan", filter.Position),
		zap.String("search", filter.Search),
	)

	total, err := s.repo.Count(ctx, filter.Unpaged())
	if err != nil {
		l.Error("count employees failed", zap.Error(err))
		return ListEmployeesResult{}, mapRepositoryError(err)
	}

	employees, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		l.Error("list employees failed", zap.Error(err))
		return ListEmployeesResult{}, mapRepositoryError(err)
	}

	return ListEmployeesResult{
		Employees: mapToListResponse(employees),
		Total:     total,
		Page:      page,
		Limit:     limit,
	}, nil
}

func (s *service) Export(ctx context.Context, params ListParams) ([]EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	filter, _, _ := params.Normalize()
	l.Debug("export employees requested")

	employees, err := s.repo.FindAll(ctx, filter.Unpaged())
	if err != nil {
		l.Error("export employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("get employee by id requested", zap.Uint("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("create employee requested",
		zap.String("nip", req.NIP),
		zap.String("email", req.Email),
	)

	empl, err := validateCreate(req, s.now())
	if err != nil {
		l.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.checkUnique(ctx, qtx, &empl.NIP, &empl.Email, nil); err != nil {
		l.Warn("create employee duplicate", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := qtx.Create(ctx, empl); err != nil {
		l.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeCreated, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.cache.invalidate(ctx)

	l.Info("create employee success",
		zap.Uint("employee_id", empl.ID),
		zap.String("nip", empl.NIP),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("update employee requested",
		zap.Uint("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	changes, err := validateUpdate(req)
	if err != nil {
		l.Warn("update employee validation failed",
			zap.Uint("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := s.checkUnique(ctx, qtx, req.NIP, req.Email, &id); err != nil {
		l.Warn("update employee duplicate", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	changes.apply(empl, s.now())

	if err := qtx.Update(ctx, empl); err != nil {
		l.Error("update employee persist failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeUpdated, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("update employee commit failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.cache.invalidate(ctx)

	l.Info("update employee success", zap.Uint("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("delete employee requested",
		zap.Uint("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		l.Error("delete employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeDeleted, empl); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error("delete employee commit failed", zap.Uint("employee_id", id), zap.Error(err))
		return err
	}

	s.cache.invalidate(ctx)

	l.Info("delete employee success", zap.Uint("employee_id", id))
	return nil
}

func (s *service) Departments(ctx context.Context) ([]string, error) {
	return cachedLookup(ctx, s.cache, DepartmentsCacheKey, func(ctx context.Context) ([]string, error) {
		values, err := s.repo.DistinctDepartments(ctx)
		return values, mapRepositoryError(err)
	})
}

func (s *service) Positions(ctx context.Context) ([]string, error) {
	return cachedLookup(ctx, s.cache, PositionsCacheKey, func(ctx context.Context) ([]string, error) {
		values, err := s.repo.DistinctPositions(ctx)
		return values, mapRepositoryError(err)
	})
}

func (s *service) Statistics(ctx context.Context) (StatisticsResponse, error) {
	return cachedLookup(ctx, s.cache, StatisticsCacheKey, s.loadStatistics)
}

func (s *service) loadStatistics(ctx context.Context) (StatisticsResponse, error) {
	total, err := s.repo.Count(ctx, Filter{})
	if err != nil {
		return StatisticsResponse{}, mapRepositoryError(err)
	}

	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return StatisticsResponse{}, mapRepositoryError(err)
	}

	byDepartment, err := s.repo.CountByDepartment(ctx)
	if err != nil {
		return StatisticsResponse{}, mapRepositoryError(err)
	}

	return StatisticsResponse{
		Total:        total,
		ByStatus:     groupsToMap(byStatus),
		ByDepartment: groupsToMap(byDepartment),
	}, nil
}

// checkUnique rejects a nip or email that already belongs to another record.
// nil values are skipped; excludeID is the record being updated.
func (s *service) checkUnique(ctx context.Context, repo Repository, nip, email *string, excludeID *uint) error {
	if nip != nil {
		exists, err := repo.ExistsByNIP(ctx, *nip, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return employeeerrors.ErrNIPAlreadyExists
		}
	}

	if email != nil {
		exists, err := repo.ExistsByEmail(ctx, *email, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return employeeerrors.ErrEmailAlreadyExists
		}
	}
	return nil
}

// enqueue writes the lifecycle event to the outbox inside tx.
func (s *service) enqueue(ctx context.Context, tx *sql.Tx, eventType string, empl *Employee) error {
	l := contextutil.GetLogger(ctx, s.logger)
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	employeeID := strconv.FormatUint(uint64(empl.ID), 10)
	event, err := kafka.NewOutboxEvent(rid, aggregateType, employeeID, eventType, events.EmployeeLifecycleTopic,
		events.EmployeeLifecycleEvent{
			EventType:  eventType,
			RequestID:  rid, // Propagasi ke async events
			EmployeeID: empl.ID,
			NIP:        empl.NIP,
			OccurredAt: s.now(),
		},
	)
	if err != nil {
		l.Error("marshal event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		l.Error("employee outbox persist failed",
			zap.String("event_type", eventType),
			zap.Uint("employee_id", empl.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         empl.ID,
		NIP:        empl.NIP,
		FullName:   empl.FullName,
		Email:      empl.Email,
		Phone:      empl.Phone,
		Position:   empl.Position,
		Department: empl.Department,
		HireDate:   empl.HireDate.Format(dateLayout),
		Salary:     empl.Salary.StringFixed(2),
		Status:     empl.Status,
		Address:    empl.Address,
		CreatedAt:  empl.CreatedAt.Format(timestampLayout),
		UpdatedAt:  empl.UpdatedAt.Format(timestampLayout),
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}

func groupsToMap(groups []GroupCount) map[string]int64 {
	m := make(map[string]int64, len(groups))
	for _, g := range groups {
		m[g.Key] = g.Count
	}
	return m
}
