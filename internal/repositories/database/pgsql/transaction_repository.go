package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbanklab/bankapi/internal/apperrors"
	"github.com/openbanklab/bankapi/internal/core/domain"
	portsrepo "github.com/openbanklab/bankapi/internal/core/ports/repositories"
	"github.com/openbanklab/bankapi/internal/models"
	"github.com/openbanklab/bankapi/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepository
}

// newPgxTransactionRepository creates a new repository for ledger data.
// The account repository is injected for row locking inside transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepository) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction appends a ledger entry inside a single database transaction.
// The referenced account rows are locked for update before the insert, and
// balance-reducing entries (withdrawals, transfers) are re-verified against
// the sender's derived balance while the locks are held. This closes the
// check-then-insert race: two concurrent movements on the same account
// serialize on the row lock.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	accountIDs := referencedAccounts(txn)
	if len(accountIDs) == 0 {
		return fmt.Errorf("%w: transaction references no accounts", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}

	if txn.Type == domain.Withdrawal || txn.Type == domain.Transfer {
		balance, err := r.sumBalanceInTx(ctx, tx, *txn.AccountFrom)
		if err != nil {
			return err
		}
		if balance.LessThan(txn.Amount) {
			return fmt.Errorf("%w: balance %s is below amount %s", apperrors.ErrInsufficientFunds, balance, txn.Amount)
		}
	}

	modelTxn := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, type, account_from, account_to, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.Type,
		modelTxn.AccountFrom,
		modelTxn.AccountTo,
		modelTxn.Amount,
		modelTxn.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", modelTxn.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a single ledger entry by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, type, account_from, account_to, amount, created_at, seq
		FROM transactions
		WHERE transaction_id = $1;
	`
	var modelTxn models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.Type,
		&modelTxn.AccountFrom,
		&modelTxn.AccountTo,
		&modelTxn.Amount,
		&modelTxn.CreatedAt,
		&modelTxn.Seq,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactionsByAccount returns every ledger entry where the account is
// sender or receiver, oldest first; seq breaks ties between equal timestamps.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, detail domain.TransactionDetail) ([]domain.Transaction, error) {
	if detail == domain.DetailSummary {
		return r.listTransactionIDs(ctx, accountID)
	}

	query := `
		SELECT transaction_id, type, account_from, account_to, amount, created_at, seq
		FROM transactions
		WHERE account_from = $1 OR account_to = $1
		ORDER BY created_at, seq;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	return scanTransactions(rows, accountID)
}

func (r *PgxTransactionRepository) listTransactionIDs(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id
		FROM transactions
		WHERE account_from = $1 OR account_to = $1
		ORDER BY created_at, seq;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction ids for account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(&txn.TransactionID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction id row for account %s: %w", accountID, err)
		}
		txns = append(txns, txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction id rows for account %s: %w", accountID, rows.Err())
	}
	return txns, nil
}

// sumBalanceInTx derives the account balance inside a transaction by folding
// the rows visible to the locked snapshot. Mirrors domain.SumBalance.
func (r *PgxTransactionRepository) sumBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT transaction_id, type, account_from, account_to, amount, created_at, seq
		FROM transactions
		WHERE account_from = $1 OR account_to = $1
		ORDER BY created_at, seq;
	`
	rows, err := tx.Query(ctx, query, accountID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to query transactions for balance of account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns, err := scanTransactions(rows, accountID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return domain.SumBalance(accountID, txns), nil
}

func scanTransactions(rows pgx.Rows, accountID string) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.Type,
			&modelTxn.AccountFrom,
			&modelTxn.AccountTo,
			&modelTxn.Amount,
			&modelTxn.CreatedAt,
			&modelTxn.Seq,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for account %s: %w", accountID, err)
		}
		txns = append(txns, mapping.ToDomainTransaction(modelTxn))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for account %s: %w", accountID, rows.Err())
	}
	return txns, nil
}

func referencedAccounts(txn domain.Transaction) []string {
	ids := []string{}
	if txn.AccountFrom != nil {
		ids = append(ids, *txn.AccountFrom)
	}
	if txn.AccountTo != nil && (txn.AccountFrom == nil || *txn.AccountTo != *txn.AccountFrom) {
		ids = append(ids, *txn.AccountTo)
	}
	return ids
}
