package terminal

import "go.uber.org/zap"

type commandFunc func(cmd command) string

// withLogging records every handled command and the notice it produced.
func (h *Handler) withLogging(fn commandFunc) commandFunc {
	return func(cmd command) string {
		notice := fn(cmd)
		h.logger.Debug("command handled",
			zap.String("action", cmd.Action),
			zap.String("raw", cmd.Raw),
			zap.String("notice", notice),
		)
		return notice
	}
}
