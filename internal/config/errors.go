package config

import "fmt"

type errUnknownStore string

func (e errUnknownStore) Error() string {
	return fmt.Sprintf("CSBOT_STORE must be %q or %q, got %q", StoreMemory, StoreSQLite, string(e))
}
