package sqlguard

import "github.com/dracory/sqlgateway/shared/sqlbuild"

// Column checks every spliced part of a column definition.
func (g *Guard) Column(c sqlbuild.Column) error {
	if !g.Enabled() {
		return nil
	}
	if err := g.Identifiers(c.Name); err != nil {
		return err
	}
	if err := g.ColumnType(c.Type); err != nil {
		return err
	}
	if err := g.Length(c.LengthText()); err != nil {
		return err
	}
	return g.DefaultValue(c.DefaultText())
}

// Columns checks each column in turn and stops at the first failure.
func (g *Guard) Columns(cols []sqlbuild.Column) error {
	for _, c := range cols {
		if err := g.Column(c); err != nil {
			return err
		}
	}
	return nil
}
