// Package logging provides structured debug logging for dilemma.
//
// It wraps log/slog with a JSON handler writing to a size-rotated file under
// the user's config directory, so logs never interfere with the terminal UI.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "info", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	matchLogger := logger.WithMatch(engine.MatchID())
//	matchLogger.WithRound(3).Info("round completed", "penalty_a", 1, "penalty_b", 10)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"round completed","match_id":"...","round":3,"penalty_a":1,"penalty_b":10}
//
// # Rotation
//
// [RotatingWriter] renames debug.log to debug.log.1 (shifting older backups
// up to MaxBackups) once a write would push the file past MaxSizeMB.
//
// # Thread Safety
//
// Loggers and the RotatingWriter are safe for concurrent use. Child loggers
// created with With* share the parent's writer.
package logging
