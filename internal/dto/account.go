package dto

import (
	"github.com/openbanklab/bankapi/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
}

// CreateAccountResponse returns the generated id of a new account.
type CreateAccountResponse struct {
	ID string `json:"id"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// UpdateAccountRequest defines the data for a full account update.
type UpdateAccountRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
}

// PatchAccountRequest defines a partial account update. Exactly one of the
// fields must be supplied; pointers distinguish absent from empty.
type PatchAccountRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
}

// AccountDetailResponse is returned for single-account reads: identity plus
// the derived balance and transaction history. Transactions holds either
// TransactionRef values (summary) or TransactionResponse values (detailed).
type AccountDetailResponse struct {
	Name         string          `json:"name"`
	Surname      string          `json:"surname"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions any             `json:"transactions"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:      acc.AccountID,
		Name:    acc.Name,
		Surname: acc.Surname,
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ToAccountDetailResponse converts an AccountStatement to its response DTO.
func ToAccountDetailResponse(st *domain.AccountStatement, detail domain.TransactionDetail) AccountDetailResponse {
	resp := AccountDetailResponse{
		Name:    st.Account.Name,
		Surname: st.Account.Surname,
		Balance: st.Balance,
	}
	if detail == domain.DetailFull {
		resp.Transactions = ToTransactionResponses(st.Transactions)
	} else {
		resp.Transactions = ToTransactionRefs(st.Transactions)
	}
	return resp
}
