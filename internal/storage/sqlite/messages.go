package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/storage"
	"github.com/sandevgo/csbot/pkg/log"
)

type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

// Open creates an in-memory database and returns a repo owning it.
func Open(ctx context.Context) (*MessagesRepo, error) {
	db, err := NewDB(ctx, MemoryDSN)
	if err != nil {
		return nil, err
	}
	return NewMessagesRepo(db), nil
}

func (r *MessagesRepo) Append(ctx context.Context, sessionID string, msg core.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var lastID int64
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM messages WHERE session_id = ?`, sessionID).Scan(&lastID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to read last message id: %w", err)
	}
	if err := storage.CheckAppend(lastID, msg); err != nil {
		return err
	}

	query := `INSERT INTO messages (session_id, id, sender, text, category, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query, sessionID, msg.ID, string(msg.Sender), msg.Text, msg.Category, msg.Timestamp.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return tx.Commit()
}

func (r *MessagesRepo) List(ctx context.Context, sessionID string) ([]core.Message, error) {
	query := `SELECT id, sender, text, category, created_at FROM messages WHERE session_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []core.Message
	for rows.Next() {
		var (
			msg       core.Message
			sender    string
			createdAt int64
		)
		if err := rows.Scan(&msg.ID, &sender, &msg.Text, &msg.Category, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.Sender = core.Sender(sender)
		msg.Timestamp = time.Unix(0, createdAt)
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Str("session", sessionID).Int("count", len(messages)).Msg("loaded conversation")
	return messages, nil
}

func (r *MessagesRepo) Close() error {
	return r.db.Close()
}
