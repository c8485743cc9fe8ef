package app

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/disk"
)

// lowSpaceBytes is the free space below which a written fixture logs a warning.
const lowSpaceBytes = 512 << 20

// logFreeSpace reports the space left on the filesystem holding dir.
func (a *App) logFreeSpace(ctx context.Context, dir string) {
	u, err := disk.UsageWithContext(ctx, dir)
	if err != nil {
		a.logger.Debug().Err(err).Str("dir", dir).Msg("disk usage unavailable")
		return
	}
	ev := a.logger.Debug()
	if u.Free < lowSpaceBytes {
		ev = a.logger.Warn()
	}
	ev.Str("dir", dir).
		Str("free", humanize.Bytes(u.Free)).
		Float64("used_percent", u.UsedPercent).
		Msg("fixture filesystem")
}
