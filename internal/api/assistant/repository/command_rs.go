package assistantRepository

import (
	"context"
	"database/sql"
	"time"

	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommandDB struct {
	ID         sql.NullString `db:"id"`
	UserID     sql.NullString `db:"user_id"`
	Transcript sql.NullString `db:"transcript"`
	SettingKey sql.NullString `db:"setting_key"`
	Value      sql.NullString `db:"value"`
	Response   sql.NullString `db:"response"`
	AudioURL   sql.NullString `db:"audio_url"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *commandsRepository) CreateCommand(ctx context.Context, command entity.AssistantCommand) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          command.ID,
		"user_id":     command.UserID,
		"transcript":  command.Transcript,
		"setting_key": command.SettingKey,
		"value":       command.Value,
		"response":    command.Response,
		"audio_url":   command.AudioURL,
		"created_at":  command.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateCommand, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCommand named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCommand execution err")
		return err
	}

	return nil
}

func (r *commandsRepository) GetCommandsByUser(ctx context.Context, userID string, limit, offset int) ([]entity.AssistantCommand, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var total int
	countQuery, countArgs, err := sqlx.Named(queryCountCommandsByUser, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommandsByUser count query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)
	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommandsByUser count execution err")
		return nil, 0, err
	}

	var list []CommandDB
	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	}

	query, args, err := sqlx.Named(queryGetCommandsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommandsByUser named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &list, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommandsByUser execution err")
		return nil, 0, err
	}

	var commands []entity.AssistantCommand
	for _, commandDB := range list {
		commands = append(commands, entity.AssistantCommand{
			ID:         commandDB.ID.String,
			UserID:     commandDB.UserID.String,
			Transcript: commandDB.Transcript.String,
			SettingKey: commandDB.SettingKey.String,
			Value:      commandDB.Value.String,
			Response:   commandDB.Response.String,
			AudioURL:   commandDB.AudioURL.String,
			CreatedAt:  commandDB.CreatedAt,
		})
	}

	return commands, total, nil
}
