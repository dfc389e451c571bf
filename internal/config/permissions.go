package config

// File and directory permission constants.
const (
	// DirPermissions defines standard permissions for directories.
	DirPermissions = 0o750

	// FilePermissions defines standard permissions for files.
	FilePermissions = 0o640

	// DBFilePermissions defines permissions for database files.
	DBFilePermissions = 0o600
)
