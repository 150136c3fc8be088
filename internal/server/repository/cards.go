package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgtype"

	"github.com/IvanChernomyrdin/mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
)

const cardColumns = `id, name, link, owner, likes, created_at`

// CardsRepository — хранилище карточек.
//
// Лайки хранятся массивом TEXT[] в самой карточке, поэтому
// постановка и снятие лайка — одна атомарная команда UPDATE.
type CardsRepository struct {
	db *sql.DB
}

func NewCardsRepository(db *sql.DB) *CardsRepository {
	return &CardsRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(s rowScanner) (models.Card, error) {
	var (
		c     models.Card
		likes pgtype.TextArray
	)
	if err := s.Scan(&c.ID, &c.Name, &c.Link, &c.Owner, &likes, &c.CreatedAt); err != nil {
		return models.Card{}, err
	}

	c.Likes = make([]string, 0, len(likes.Elements))
	for _, e := range likes.Elements {
		if e.Status == pgtype.Present {
			c.Likes = append(c.Likes, e.String)
		}
	}
	return c, nil
}

func cardError(op string, err error) error {
	return mapError(op, err, serr.MsgCardNotFound, serr.MsgBadRequest)
}

// Create сохраняет карточку. Owner должен быть задан вызывающим кодом.
func (r *CardsRepository) Create(ctx context.Context, c models.Card) (models.Card, error) {
	if c.ID == "" {
		c.ID = models.NewID()
	}

	card, err := scanCard(r.db.QueryRowContext(ctx, `
		INSERT INTO cards (id, name, link, owner)
		VALUES ($1, $2, $3, $4)
		RETURNING `+cardColumns,
		c.ID, c.Name, c.Link, c.Owner,
	))
	if err != nil {
		return models.Card{}, cardError("create card", err)
	}
	return card, nil
}

// List возвращает все карточки, новые первыми.
func (r *CardsRepository) List(ctx context.Context) ([]models.Card, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cardColumns+` FROM cards ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, cardError("list cards", err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0)
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, cardError("scan card", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, cardError("list cards", err)
	}
	return cards, nil
}

func (r *CardsRepository) FindByID(ctx context.Context, id string) (models.Card, error) {
	c, err := scanCard(r.db.QueryRowContext(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id))
	if err != nil {
		return models.Card{}, cardError("find card", err)
	}
	return c, nil
}

// Delete удаляет карточку и возвращает её последнее состояние.
func (r *CardsRepository) Delete(ctx context.Context, id string) (models.Card, error) {
	c, err := scanCard(r.db.QueryRowContext(ctx, `DELETE FROM cards WHERE id = $1 RETURNING `+cardColumns, id))
	if err != nil {
		return models.Card{}, cardError("delete card", err)
	}
	return c, nil
}

// AddLike добавляет userID в лайки, если его там ещё нет.
//
// При конкурентных UPDATE одной строки PostgreSQL перечитывает её
// после снятия блокировки, так что повторов в массиве не бывает.
func (r *CardsRepository) AddLike(ctx context.Context, cardID, userID string) (models.Card, error) {
	c, err := scanCard(r.db.QueryRowContext(ctx, `
		UPDATE cards SET likes = CASE
			WHEN $2::text = ANY(likes) THEN likes
			ELSE array_append(likes, $2::text)
		END
		WHERE id = $1
		RETURNING `+cardColumns,
		cardID, userID,
	))
	if err != nil {
		return models.Card{}, cardError("like card", err)
	}
	return c, nil
}

// RemoveLike убирает userID из лайков. Если лайка не было, карточка не меняется.
func (r *CardsRepository) RemoveLike(ctx context.Context, cardID, userID string) (models.Card, error) {
	c, err := scanCard(r.db.QueryRowContext(ctx, `
		UPDATE cards SET likes = array_remove(likes, $2::text)
		WHERE id = $1
		RETURNING `+cardColumns,
		cardID, userID,
	))
	if err != nil {
		return models.Card{}, cardError("dislike card", err)
	}
	return c, nil
}
