//go:build !android

package game

// ensureStorageDir 非 Android 平台上 gdata 会自行创建存储目录
func ensureStorageDir(appName string) error {
	return nil
}
