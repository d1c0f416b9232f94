package models

// Tabler is implemented by every mapped model.
type Tabler interface {
	TableName() string
}

// Registry lists the mapped models, parents before children.
func Registry() []any {
	return []any{&UserAccount{}, &Address{}}
}

// TableNames returns the table of every registered model in Registry order.
func TableNames() []string {
	registry := Registry()
	names := make([]string, 0, len(registry))
	for _, model := range registry {
		names = append(names, model.(Tabler).TableName())
	}
	return names
}
