package app

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/five82/marquee/internal/i18n"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/view"
)

// ErrPlayerUnavailable reports that no usable external player is configured.
var ErrPlayerUnavailable = errors.New("external player unavailable")

// PlayerCommand builds the command that opens the playing movie in the
// configured external player. The player setting may carry arguments, e.g.
// "mpv --fs"; the movie source is appended last.
func (a *App) PlayerCommand() (*exec.Cmd, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.begin(); err != nil {
		return nil, err
	}
	playing := a.session.Snapshot().Playing
	if playing == nil {
		a.inform(i18n.KeyNoMovieSelected)
		return nil, state.ErrNoMovieSelected
	}
	if strings.TrimSpace(playing.Src) == "" {
		a.fail(i18n.KeyMovieNotFound)
		return nil, fmt.Errorf("%w: %s has no source", state.ErrMovieNotFound, playing.ID)
	}

	fields := strings.Fields(a.cfg.Player)
	if len(fields) == 0 {
		a.fail(i18n.KeyPlayerUnavailable)
		return nil, ErrPlayerUnavailable
	}
	path, err := exec.LookPath(fields[0])
	if err != nil {
		a.fail(i18n.KeyPlayerUnavailable)
		return nil, fmt.Errorf("%w: %w", ErrPlayerUnavailable, err)
	}
	args := append(fields[1:], playing.Src)
	return exec.Command(path, args...), nil
}

// PlayerExited records the outcome of an external player run.
func (a *App) PlayerExited(err error) view.Model {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		log.Printf("external player: %v", err)
		a.fail(i18n.KeyPlayerUnavailable)
	}
	return a.viewLocked()
}
