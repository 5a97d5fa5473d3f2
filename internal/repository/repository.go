package repository

import "database/sql"

// requireAffected converts a zero-row write into sql.ErrNoRows so services
// can map missing targets to 404 uniformly.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
