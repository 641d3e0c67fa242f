// Package session bootstraps the bot's authentication state: it pulls the
// remote session bundle for the configured session id and promotes it into
// the durable store when the stored generation differs.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wabot-sh/wabot/internal/db"
	"github.com/wabot-sh/wabot/internal/pubsub"
)

// Status is the user-visible outcome of a sync attempt. Every failure mode
// collapses into StatusNoData; the cause travels separately in SyncError.
type Status string

const (
	StatusNoSession Status = "no_session"
	StatusConnected Status = "connected"
	StatusNoData    Status = "no_data"
)

// Notice returns the chat-facing text for a status.
func (s Status) Notice() string {
	switch s {
	case StatusNoSession:
		return "No session configured, scan the QR code to pair"
	case StatusConnected:
		return "Session connected"
	default:
		return "No session data"
	}
}

// SyncError wraps the underlying cause of a failed sync attempt. Callers
// present the generic StatusNoData notice to the user and keep the cause
// for logs and tests.
type SyncError struct {
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("session sync failed: %v", e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

type manifest struct {
	Files []manifestFile `json:"files"`
}

type manifestFile struct {
	URL string `json:"url"`
}

type Service struct {
	*pubsub.Broker[Status]
	dataDir string
	baseURL string
	client  *http.Client
}

func NewService(dataDir, baseURL string) *Service {
	return &Service{
		Broker:  pubsub.NewBroker[Status](),
		dataDir: dataDir,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Sync ensures the durable store's session table reflects the remote
// bundle for sessionID. An empty sessionID performs no I/O at all. The
// returned error, if any, is a *SyncError; the Status alone is what the
// user sees.
func (s *Service) Sync(ctx context.Context, sessionID string) (Status, error) {
	if sessionID == "" {
		s.Publish(pubsub.UpdatedEvent, StatusNoSession)
		return StatusNoSession, nil
	}

	st, err := s.sync(ctx, sessionID)
	if err != nil {
		s.Publish(pubsub.UpdatedEvent, StatusNoData)
		return StatusNoData, &SyncError{Err: err}
	}
	s.Publish(pubsub.UpdatedEvent, st)
	return st, nil
}

func (s *Service) sync(ctx context.Context, sessionID string) (Status, error) {
	blobURL, err := s.fetchManifest(ctx, sessionID)
	if err != nil {
		return "", err
	}

	scratchPath := filepath.Join(s.dataDir, "session.scratch-"+uuid.NewString()+".db")
	defer func() {
		// Best-effort; the scratch bundle never outlives the attempt.
		_ = os.Remove(scratchPath)
	}()

	if err := s.download(ctx, blobURL, scratchPath); err != nil {
		return "", err
	}

	durable, err := db.Connect(ctx, s.dataDir)
	if err != nil {
		return "", err
	}
	defer durable.Close()

	scratch, err := db.OpenScratch(scratchPath)
	if err != nil {
		return "", err
	}
	defer scratch.Close()

	var durableID, scratchID string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		durableID, err = readSessionID(gctx, durable)
		return err
	})
	g.Go(func() error {
		var err error
		scratchID, err = readSessionID(gctx, scratch)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	if durableID == scratchID {
		return StatusConnected, nil
	}

	rows, err := db.New(scratch).ListSessionRows(ctx)
	if err != nil {
		return "", err
	}
	if err := replaceSessionRows(ctx, durable, rows); err != nil {
		return "", err
	}
	return StatusConnected, nil
}

func (s *Service) fetchManifest(ctx context.Context, sessionID string) (string, error) {
	u, err := url.JoinPath(s.baseURL, sessionID)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("session endpoint returned %s", resp.Status)
	}

	var m manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return "", fmt.Errorf("malformed session manifest: %w", err)
	}
	if len(m.Files) == 0 || m.Files[0].URL == "" {
		return "", errors.New("session manifest lists no files")
	}
	return m.Files[0].URL, nil
}

func (s *Service) download(ctx context.Context, blobURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, blobURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("session file download returned %s", resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readSessionID reads the stored generation marker; a missing row means
// no generation is stored yet.
func readSessionID(ctx context.Context, conn *sql.DB) (string, error) {
	id, err := db.New(conn).GetSessionID(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return id, err
}

// replaceSessionRows swaps the durable session table for the scratch rows
// in one transaction, so readers see either the old generation or the new
// one, never a mix and never an empty table.
func replaceSessionRows(ctx context.Context, conn *sql.DB, rows []db.Session) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // no-op after commit

	qtx := db.New(conn).WithTx(tx)
	if err := qtx.DeleteSessionRows(ctx); err != nil {
		return err
	}
	for _, row := range rows {
		err := qtx.CreateSessionRow(ctx, db.CreateSessionRowParams{
			SessionID: row.SessionID,
			DataKey:   row.DataKey,
			DataValue: row.DataValue,
		})
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
