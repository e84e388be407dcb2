package logger

// CollectErrorEntriesExported exposes collectErrorEntries for testing.
var CollectErrorEntriesExported = collectErrorEntries

// FormatErrorEntriesExported exposes formatErrorEntries for testing.
var FormatErrorEntriesExported = formatErrorEntries
