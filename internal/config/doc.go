// Package config resolves the raw coder-workspace plugin section into the
// typed Configuration served to the web UI.
//
// # Basic Usage
//
// The main entry point is [Resolve], which reads every known key from a
// [KeyValueConfig] and returns a freshly allocated [Configuration]:
//
//	kv := store.NewValues(src)
//	cfg := config.Resolve(kv)
//
// Deployments that want repository cloning on by default build their own
// [Resolver]:
//
//	r := config.NewResolver(config.WithCloneRepositoryDefault(true))
//	cfg := r.Resolve(kv)
//
// # Composite Fields
//
// richParams accepts two encodings. The JSON form under richParamsJson wins
// when it yields at least one entry; otherwise the delimited form is used:
//
//	richParams = REPO:repo,BRANCH:branch,GERRIT_CHANGE:change
//
// Malformed entries are dropped one by one. When nothing usable remains, the
// built-in list is kept.
//
// templateMappings is read from templateMappingsJson as a JSON array:
//
//	[{"repo": "my/org/*", "branch": "refs/heads/main",
//	  "templateVersionId": "uuid",
//	  "richParams": [{"name": "REPO", "from": "repo"}]}]
//
// Malformed JSON leaves the list empty. A mapping without richParams keeps a
// nil list, which serializes as an omitted field; an explicit [] stays an
// empty list.
//
// # Repository Cloning
//
// When enableCloneRepository is false, GERRIT_GIT_SSH_URL and
// GERRIT_CHANGE_REF are removed from the top-level list and from every
// mapping that carries its own list. This runs once, after all other fields
// are resolved.
//
// # Validation
//
// [Validate] lints a resolved configuration (URLs, enum values, rich
// parameter sources) and [UnknownKeys] reports keys the resolver ignores.
// Neither affects resolution.
package config
