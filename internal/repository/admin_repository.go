package repository

import (
	"database/sql"
	"errors"

	"luxedoll/internal/model"

	"github.com/jmoiron/sqlx"
)

// AdminRepository 管理员账号存储库
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository 创建管理员账号存储库
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByUsername 根据用户名获取管理员账号，不存在时返回nil
func (r *AdminRepository) GetByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	query := `SELECT * FROM admins WHERE username = ?`
	err := r.db.Get(&admin, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create 创建管理员账号
func (r *AdminRepository) Create(admin *model.Admin) error {
	query := `INSERT INTO admins (username, password_hash) VALUES (?, ?)`
	_, err := r.db.Exec(query, admin.Username, admin.PasswordHash)
	return err
}
