package usecase

import (
	"time"

	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/model"
)

const sessionSweepInterval = time.Minute

// session returns the editing session of sc, creating it with default parameters.
func (uc *implUseCase) session(sc model.Scope) (*session, error) {
	if sc.UserID == "" {
		return nil, missionreport.ErrUserRequired
	}

	now := uc.config.Now()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.evictIdle(now)

	s, ok := uc.sessions[sc.UserID]
	if !ok {
		ctrl := NewController(uc.l, sc, uc.chartUC, uc.executor, uc.displays, uc.notifiers, uc.config.Now)
		ctrl.InitializeDefaults()
		s = &session{ctrl: ctrl}
		uc.sessions[sc.UserID] = s
	}
	s.lastUsed = now
	return s, nil
}

// evictIdle drops sessions unused for SessionIdleTTL. It scans at most once a minute.
// A running generation of an evicted session still publishes to the displays.
// uc.mu must be held.
func (uc *implUseCase) evictIdle(now time.Time) {
	if now.Sub(uc.lastSweep) < sessionSweepInterval {
		return
	}
	uc.lastSweep = now

	for id, s := range uc.sessions {
		if now.Sub(s.lastUsed) >= uc.config.SessionIdleTTL {
			delete(uc.sessions, id)
		}
	}
}

func (uc *implUseCase) output(s *session) missionreport.ReportOutput {
	return missionreport.ReportOutput{
		Report:  s.ctrl.CurrentReport(),
		IsDirty: s.ctrl.IsDirty(),
	}
}
