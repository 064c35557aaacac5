// Package validation implements declarative, purely structural validation
// of user payloads. Uniqueness and any other checks that require I/O are
// the store's responsibility, not this package's.
package validation

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"auth_backend/internal/feature/auth/transport/http/dto"
)

// Field identifies a validatable user attribute by its wire name.
type Field string

// Wire-level field names. These match the JSON attribute names and are
// the keys of the field-error mapping in 400 responses.
const (
	FieldName           Field = "name"
	FieldEmail          Field = "email"
	FieldPass           Field = "pass"
	FieldCPF            Field = "cpf"
	FieldDataNascimento Field = "dataNascimento"
	FieldTelefone       Field = "telefone"
	FieldEndereco       Field = "endereco"
)

var dateISO = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// fieldRule pairs a field with its ordered rule list and an accessor
// into the payload.
type fieldRule struct {
	field Field
	value func(dto.UserPayload) string
	rules []validation.Rule
}

// userSchema is the fixed rule table for user payloads. Rules run in
// order and every failing rule contributes one message, so a field can
// report multiple errors at once.
var userSchema = []fieldRule{
	{
		field: FieldName,
		value: func(p dto.UserPayload) string { return p.Name },
		rules: []validation.Rule{
			validation.Required.Error("O nome é obrigatório."),
			validation.Length(3, 0).Error("O nome deve ter no mínimo 3 caracteres."),
			validation.Length(0, 255).Error("O nome deve ter no máximo 255 caracteres."),
		},
	},
	{
		field: FieldEmail,
		value: func(p dto.UserPayload) string { return p.Email },
		rules: []validation.Rule{
			validation.Required.Error("O email é obrigatório."),
			is.Email.Error("Email inválido."),
		},
	},
	{
		field: FieldPass,
		value: func(p dto.UserPayload) string { return p.Pass },
		rules: []validation.Rule{
			validation.Required.Error("A senha é obrigatória."),
			validation.Length(6, 0).Error("A senha deve ter no mínimo 6 caracteres."),
			validation.Length(0, 15).Error("A senha deve ter no máximo 15 caracteres."),
		},
	},
	{
		field: FieldCPF,
		value: func(p dto.UserPayload) string { return p.CPF },
		rules: []validation.Rule{
			validation.Required.Error("O CPF é obrigatório."),
			validation.Length(11, 11).Error("O CPF deve ter 11 dígitos."),
		},
	},
	{
		field: FieldDataNascimento,
		value: func(p dto.UserPayload) string { return p.DataNascimento },
		rules: []validation.Rule{
			validation.Required.Error("A data de nascimento é obrigatória."),
			validation.Match(dateISO).Error("Formato de data inválido. Use AAAA-MM-DD."),
		},
	},
	{
		field: FieldTelefone,
		value: func(p dto.UserPayload) string { return p.Telefone },
		rules: []validation.Rule{
			validation.Required.Error("O telefone é obrigatório."),
			validation.Length(10, 0).Error("O telefone deve ter no mínimo 10 dígitos."),
			validation.Length(0, 15).Error("O telefone deve ter no máximo 15 dígitos."),
		},
	},
	{
		field: FieldEndereco,
		value: func(p dto.UserPayload) string { return p.Endereco },
		rules: []validation.Rule{
			validation.Required.Error("O endereço é obrigatório."),
			validation.Length(0, 500).Error("O endereço deve ter no máximo 500 caracteres."),
		},
	},
}

// Result is the outcome of validating a payload. On success OK is true
// and Data carries the validated payload; on failure FieldErrors maps
// each offending field to its messages in rule order.
type Result struct {
	OK          bool
	Data        dto.UserPayload
	FieldErrors map[string][]string
}

// ValidateUser checks the payload against the user schema. Fields named
// in optional may be omitted: when such a field is empty it is skipped
// entirely, and when present it is still checked against its non-required
// rules. The user id is system-assigned and never part of the payload,
// so it is implicitly optional at every call site.
func ValidateUser(in dto.UserPayload, optional ...Field) Result {
	skip := make(map[Field]bool, len(optional))
	for _, f := range optional {
		skip[f] = true
	}

	fieldErrors := make(map[string][]string)
	for _, fr := range userSchema {
		value := fr.value(in)
		if skip[fr.field] && value == "" {
			continue
		}
		var msgs []string
		for _, rule := range fr.rules {
			// Non-required rules skip empty values, so a present-but-empty
			// required field reports only its "required" message.
			if err := validation.Validate(value, rule); err != nil {
				msgs = append(msgs, err.Error())
			}
		}
		if len(msgs) > 0 {
			fieldErrors[string(fr.field)] = msgs
		}
	}

	if len(fieldErrors) > 0 {
		return Result{OK: false, FieldErrors: fieldErrors}
	}
	return Result{OK: true, Data: in}
}
