package repository

import (
	"database/sql"
	"fmt"
)

// checkAffected traduz "nenhuma linha afetada" em sql.ErrNoRows para que
// as camadas acima possam distinguir registro inexistente de falha do banco
func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
