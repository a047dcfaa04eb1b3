package onboarding

import (
	"context"

	"go.uber.org/zap"
	"schoolapp-backend/log"
)

// Rollback deletes every record the ledger names, newest first, so no
// dependent record ever outlives the user it points at. Each delete stands
// alone: one failing delete is logged and the rest are still attempted. The
// caller's original error is never replaced by a cleanup failure, which
// means orphans are possible when a delete fails and the log line is all the
// visibility they get.
func (s *Service) Rollback(ctx context.Context, led *Ledger) {
	entries := led.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]

		var err error
		switch e.Kind {
		case KindFile:
			err = s.st.Files.DeleteByUserID(ctx, e.UserID)
		case KindParent:
			err = s.st.Parents.DeleteByUserID(ctx, e.UserID)
		case KindAddress:
			err = s.st.Addresses.DeleteByUserID(ctx, e.UserID)
		case KindProfile:
			err = s.st.Profiles.DeleteByUserID(ctx, e.UserID)
		case KindUser:
			err = s.st.Users.DeleteByUserID(ctx, e.UserID)
		}

		if err != nil {
			log.Logger.Error("compensation failed",
				zap.String("kind", e.Kind.String()),
				zap.String("userid", e.UserID),
				zap.Error(err))
		}
	}
}
