package database

// Driver and dialect
const (
	DriverName = "sqlite"

	// InMemoryDSN opens a private in-memory database
	InMemoryDSN = ":memory:"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToOpen         = "failed to open save database"
	ErrMsgFailedToPingDatabase = "failed to ping database"
	ErrMsgFailedToMigrate      = "failed to apply save database migrations"
	ErrMsgFailedToWriteSlot    = "failed to write save slot"
	ErrMsgFailedToReadSlot     = "failed to read save slot"
	ErrMsgFailedToListSlots    = "failed to list save slots"
	ErrMsgSlotNotFound         = "save slot not found"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully opened the save database"
	LogMsgMigrationsApplied               = "Save database migrations applied"
)
