package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ramanasai/keytimer/internal/timer"
)

// Event kinds stored in the journal.
const (
	KindKey     = "key"
	KindStart   = "start"
	KindExpire  = "expire"
	KindDismiss = "dismiss"
	KindClear   = "clear"
)

// Event is one journal row.
type Event struct {
	ID      int64     `json:"id"`
	At      time.Time `json:"at"`
	Session string    `json:"session"`
	Kind    string    `json:"kind"`
	Mode    string    `json:"mode,omitempty"`
	Detail  string    `json:"detail,omitempty"`
	Seconds int       `json:"seconds,omitempty"`
}

// Journal records controller events for one run of the timer. It satisfies
// timer.Observer; write failures are logged and otherwise ignored so a full
// disk never stops the countdown.
type Journal struct {
	db      *sql.DB
	session string
	now     func() time.Time
}

func NewJournal(dbh *sql.DB) *Journal {
	return &Journal{db: dbh, session: uuid.NewString(), now: time.Now}
}

func (j *Journal) Session() string { return j.session }

// Record inserts e, filling in the session and timestamp when unset.
func (j *Journal) Record(e Event) error {
	if e.Session == "" {
		e.Session = j.session
	}
	if e.At.IsZero() {
		e.At = j.now()
	}
	_, err := j.db.Exec(
		`INSERT INTO events(ts, session, kind, mode, detail, seconds) VALUES(?, ?, ?, ?, ?, ?)`,
		e.At.UTC().Format(time.RFC3339Nano), e.Session, e.Kind, e.Mode, e.Detail, e.Seconds,
	)
	if err != nil {
		return fmt.Errorf("journal insert %s: %w", e.Kind, err)
	}
	return nil
}

// Recent returns up to limit events, newest first. kinds filters by event
// kind when non-empty.
func Recent(dbh *sql.DB, limit int, kinds ...string) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	q := `SELECT id, ts, session, kind, mode, detail, seconds FROM events`
	args := []any{}
	if len(kinds) > 0 {
		q += ` WHERE kind IN (?` + strings.Repeat(`, ?`, len(kinds)-1) + `)`
		for _, k := range kinds {
			args = append(args, k)
		}
	}
	q += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := dbh.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Session, &e.Kind, &e.Mode, &e.Detail, &e.Seconds); err != nil {
			return nil, err
		}
		e.At, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("bad timestamp in journal row %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (j *Journal) record(e Event) {
	if err := j.Record(e); err != nil {
		log.Warn().Err(err).Msg("journal write failed")
	}
}

func (j *Journal) KeyAccepted(k timer.Key, mode timer.Mode) {
	j.record(Event{Kind: KindKey, Mode: mode.String(), Detail: k.String()})
}

func (j *Journal) ModeChanged(from, to timer.Mode) {
	if to == timer.ModeBanner {
		j.record(Event{Kind: KindClear, Mode: from.String()})
	}
}

func (j *Journal) CountdownStarted(d timer.Duration) {
	j.record(Event{Kind: KindStart, Mode: timer.ModeEntry.String(), Detail: d.String(), Seconds: d.TotalSeconds()})
}

func (j *Journal) CountdownExpired(totalSeconds int) {
	j.record(Event{Kind: KindExpire, Mode: timer.ModeCounting.String(), Seconds: totalSeconds})
}

func (j *Journal) AlarmSilenced() {
	j.record(Event{Kind: KindDismiss, Mode: timer.ModeAlarm.String()})
}
