package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Recorder core
		"No frames to save for %s":                              "%s の保存対象フレームがありません",
		"No frames to estimate rate from for %s":                "%s のフレームレートを推定するフレームがありません",
		"Refusing to open sink for %s: frame rate %v is unusable": "%s のシンクを開けません: フレームレート %v が不正です",
		"Saved video to %s":                                     "動画を %s に保存しました",
		"Saved timestamps for %s":                               "%s のタイムスタンプを保存しました",
		"Failed writing frame %d to %s: %s":                     "フレーム %d の %s への書き込みに失敗しました: %s",
		"Failed saving timestamps for %s: %s":                   "%s のタイムスタンプ保存に失敗しました: %s",
		"Failed encoding recording info for %s: %s":             "%s の録画情報のエンコードに失敗しました: %s",
		"Failed saving recording info to %s: %s":                "録画情報の %s への保存に失敗しました: %s",

		// Sink selection
		"ffmpeg not available, storing %s video as MJPEG": "ffmpeg が見つからないため %s 動画を MJPEG で保存します",

		// CLI
		"Recording %d frames to %s":       "%d フレームを %s に録画中",
		"Recording completed: %s":         "録画が完了しました: %s",
		"Flushing %d images to %s":        "%d 枚の画像を %s に書き出し中",
	})
}
