package models

import "gorm.io/gorm/clause"

// Column references a column of model M. The type parameter keeps predicates
// and orderings for one table from being applied to a query on another.
type Column[M Tabler] struct {
	name string
}

var (
	UserID       = Column[UserAccount]{name: "id"}
	UserName     = Column[UserAccount]{name: "name"}
	UserFullName = Column[UserAccount]{name: "full_name"}

	AddressID           = Column[Address]{name: "id"}
	AddressEmailAddress = Column[Address]{name: "email_address"}
	AddressUserID       = Column[Address]{name: "user_id"}
)

func (c Column[M]) Name() string {
	return c.name
}

func (c Column[M]) Table() string {
	var model M
	return model.TableName()
}

// Qualified returns "table.column".
func (c Column[M]) Qualified() string {
	return c.Table() + "." + c.name
}

func (c Column[M]) Clause() clause.Column {
	return clause.Column{Table: c.Table(), Name: c.name}
}

func (c Column[M]) Eq(value any) Predicate[M] {
	return Predicate[M]{expr: clause.Eq{Column: c.Clause(), Value: value}}
}

func (c Column[M]) In(values ...any) Predicate[M] {
	return Predicate[M]{expr: clause.IN{Column: c.Clause(), Values: values}}
}

func (c Column[M]) Asc() Ordering[M] {
	return Ordering[M]{column: clause.OrderByColumn{Column: c.Clause()}}
}

func (c Column[M]) Desc() Ordering[M] {
	return Ordering[M]{column: clause.OrderByColumn{Column: c.Clause(), Desc: true}}
}

type Predicate[M Tabler] struct {
	expr clause.Expression
}

func (p Predicate[M]) Expression() clause.Expression {
	return p.expr
}

type Ordering[M Tabler] struct {
	column clause.OrderByColumn
}

func (o Ordering[M]) Clause() clause.OrderByColumn {
	return o.column
}
