package assets

import "embed"

// FixturesFS embeds the JSON seed data the store and the login user
// list are built from.
//
//go:embed fixtures/*.json
var FixturesFS embed.FS

// Fixture paths inside FixturesFS.
const (
	TransactionsPath = "fixtures/transactions.json"
	UsersPath        = "fixtures/users.json"
)
