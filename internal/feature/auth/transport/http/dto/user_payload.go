// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// UserPayload is the raw request body shared by the signup, login and
// update endpoints. Validation is performed by the validation package,
// not by binding tags, so each call site can choose which fields are
// required.
type UserPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Pass           string `json:"pass"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"dataNascimento"`
	Telefone       string `json:"telefone"`
	Endereco       string `json:"endereco"`
}

// UpdateNamePayload is the request body for the name-only update endpoint.
type UpdateNamePayload struct {
	Name string `json:"name"`
}
