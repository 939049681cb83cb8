package redis

// entriesKey is the key holding the full analytics collection as one JSON
// document. The collection is small and rewritten wholesale on append, so a
// single document keeps the layout identical to the file backend.
func entriesKey() string {
	return "pulsedash:analytics:entries"
}
