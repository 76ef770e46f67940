package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type GroupCount struct {
	Key   string
	Count int64
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, filter Filter) ([]Employee, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	FindByID(ctx context.Context, id uint) (*Employee, error)
	ExistsByNIP(ctx context.Context, nip string, excludeID *uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *uint) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id uint) error
	DistinctDepartments(ctx context.Context) ([]string, error)
	DistinctPositions(ctx context.Context) ([]string, error)
	CountByStatus(ctx context.Context) ([]GroupCount, error)
	CountByDepartment(ctx context.Context) ([]GroupCount, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn returns a session bound to ctx that runs on the transaction when one is set.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Employee, error) {
	employees := make([]Employee, 0)
	err := r.conn(ctx).
		Model(&Employee{}).
		Scopes(filter.Where, filter.Order, filter.Page).
		Find(&employees).Error
	return employees, err
}

func (r *repository) Count(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	err := r.conn(ctx).
		Model(&Employee{}).
		Scopes(filter.Where).
		Count(&total).Error
	return total, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) ExistsByNIP(ctx context.Context, nip string, excludeID *uint) (bool, error) {
	return r.exists(ctx, "nip = ?", nip, excludeID)
}

func (r *repository) ExistsByEmail(ctx context.Context, email string, excludeID *uint) (bool, error) {
	return r.exists(ctx, "email = ?", email, excludeID)
}

func (r *repository) exists(ctx context.Context, cond string, value any, excludeID *uint) (bool, error) {
	db := r.conn(ctx).
		Model(&Employee{}).
		Where(cond, value)

	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.conn(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DistinctDepartments(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "departemen")
}

func (r *repository) DistinctPositions(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "jabatan")
}

func (r *repository) distinct(ctx context.Context, column string) ([]string, error) {
	values := make([]string, 0)
	err := r.conn(ctx).
		Model(&Employee{}).
		Distinct(column).
		Order(column + " ASC").
		Pluck(column, &values).Error
	return values, err
}

func (r *repository) CountByStatus(ctx context.Context) ([]GroupCount, error) {
	return r.countBy(ctx, "status")
}

func (r *repository) CountByDepartment(ctx context.Context) ([]GroupCount, error) {
	return r.countBy(ctx, "departemen")
}

func (r *repository) countBy(ctx context.Context, column string) ([]GroupCount, error) {
	groups := make([]GroupCount, 0)
	err := r.conn(ctx).
		Model(&Employee{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Order(column + " ASC").
		Scan(&groups).Error
	return groups, err
}
