// Package logtail reads the tail of hcalc's log file.
//
// Persistence failures never interrupt the calculator; they are written to
// the log instead. The settings panel uses Read and Problems to show the most
// recent of them so a user can tell that preferences are not being saved.
//
// Read scans the file once through a sliding window, so at most maxLines
// stay in memory regardless of file size:
//
//	lines, err := logtail.Read(afero.NewOsFs(), cfg.LogPath, 200)
//	if err != nil {
//		log.Printf("read log failed: %v", err)
//	}
//	recent := logtail.Problems(lines)
package logtail
