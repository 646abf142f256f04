package homework

import "fmt"

// Review statuses reported by the API.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

const (
	FieldName   = "homework_name"
	FieldStatus = "status"
)

var verdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the phrase for status.
func Verdict(status string) (string, bool) {
	v, ok := verdicts[status]
	return v, ok
}

// ParseStatus formats the status-change message for one submission record.
func ParseStatus(record map[string]any) (string, error) {
	name, ok := record[FieldName]
	if !ok {
		return "", &MissingFieldError{Field: FieldName}
	}
	raw, ok := record[FieldStatus]
	if !ok {
		return "", &MissingFieldError{Field: FieldStatus}
	}
	status, _ := raw.(string)
	verdict, ok := Verdict(status)
	if !ok {
		return "", &UnknownStatusError{Status: raw}
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%v\". %s", name, verdict), nil
}
