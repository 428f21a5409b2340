package repository

import (
	"github.com/anbessa/iam-backend/internal/domain"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id uint) (*domain.User, error)
	FindByCode(code string) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	// FindPrincipal loads a user with the full access graph attached:
	// user type, roles, and each role's permissions. Guards evaluate
	// against this eagerly loaded shape and never load lazily.
	FindPrincipal(id uint) (*domain.User, error)
	Search(filter Filter, order []string) ([]domain.User, error)
	SearchPaged(filter Filter, order []string, req PageRequest) (*PageResult[domain.User], error)
	UpdateFields(user *domain.User, fields map[string]any) error
	Tx(tx *gorm.DB) UserRepository
}

type GormUserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &GormUserRepository{db: db} }

// Tx returns a copy bound to the caller-supplied transaction handle.
func (r *GormUserRepository) Tx(tx *gorm.DB) UserRepository { return &GormUserRepository{db: tx} }

func (r *GormUserRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	if err := r.db.Preload("Roles").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) FindByCode(code string) (*domain.User, error) {
	var u domain.User
	err := r.db.Preload("Roles.Permissions").Where("code = ?", code).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) FindByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) FindPrincipal(id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.Preload("UserType").Preload("Roles.Permissions").First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) Search(filter Filter, order []string) ([]domain.User, error) {
	q := ApplyFilter(r.db, filter).Preload("Roles")
	for _, o := range order {
		q = q.Order(o)
	}
	var users []domain.User
	err := q.Find(&users).Error
	return users, err
}

func (r *GormUserRepository) SearchPaged(filter Filter, order []string, req PageRequest) (*PageResult[domain.User], error) {
	return Paginate[domain.User](r.db, filter, order, []string{"Roles"}, req)
}

func (r *GormUserRepository) UpdateFields(user *domain.User, fields map[string]any) error {
	return r.db.Model(user).Updates(fields).Error
}
