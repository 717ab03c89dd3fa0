package sqlstore

import "fmt"

func tableColumn(table, column string) string {
	return fmt.Sprintf("%s.%s", table, column)
}
