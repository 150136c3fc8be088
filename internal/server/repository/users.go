package repository

import (
	"context"
	"database/sql"

	"github.com/IvanChernomyrdin/mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
)

const userColumns = `id, name, about, avatar, email, created_at`

// UsersRepository — хранилище пользователей.
type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет нового пользователя.
//
// Если ID не задан, генерируется новый ключ. Пустые name/about/avatar
// заменяются значениями по умолчанию.
//
// Ошибки:
//   - Conflict — email уже занят
//   - BadRequest — данные не прошли ограничения схемы
func (r *UsersRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = models.NewID()
	}
	if u.Name == "" {
		u.Name = models.DefaultName
	}
	if u.About == "" {
		u.About = models.DefaultAbout
	}
	if u.Avatar == "" {
		u.Avatar = models.DefaultAvatar
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, name, about, avatar, email, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`,
		u.ID, u.Name, u.About, u.Avatar, u.Email, u.PasswordHash,
	).Scan(&u.CreatedAt)
	if err != nil {
		return models.User{}, mapError("create user", err, serr.MsgUserNotFound, serr.MsgEmailExists)
	}

	return u, nil
}

// List возвращает всех пользователей.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, mapError("list users", err, serr.MsgUserNotFound, serr.MsgEmailExists)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt); err != nil {
			return nil, mapError("scan user", err, serr.MsgUserNotFound, serr.MsgEmailExists)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list users", err, serr.MsgUserNotFound, serr.MsgEmailExists)
	}

	return users, nil
}

// FindByID возвращает пользователя по ключу. Хэш пароля не читается.
func (r *UsersRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt)
	if err != nil {
		return models.User{}, mapError("find user", err, serr.MsgUserNotFound, serr.MsgEmailExists)
	}
	return u, nil
}

// FindOneByEmail возвращает пользователя вместе с хэшем пароля.
// Используется только при входе.
func (r *UsersRepository) FindOneByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt, &u.PasswordHash)
	if err != nil {
		return models.User{}, mapError("find user by email", err, serr.MsgUserNotFound, serr.MsgEmailExists)
	}
	return u, nil
}

// UpdateFields меняет только заданные (не nil) поля профиля и возвращает
// обновлённую запись. Ограничения схемы проверяются самой БД при записи.
func (r *UsersRepository) UpdateFields(ctx context.Context, id string, upd models.UserUpdate) (models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, `
		UPDATE users SET
			name   = COALESCE($2, name),
			about  = COALESCE($3, about),
			avatar = COALESCE($4, avatar)
		WHERE id = $1
		RETURNING `+userColumns,
		id, upd.Name, upd.About, upd.Avatar,
	).Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt)
	if err != nil {
		return models.User{}, mapError("update user", err, serr.MsgUserNotFound, serr.MsgEmailExists)
	}
	return u, nil
}
