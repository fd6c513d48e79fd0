package flows

// Deps groups flow dependency sets. The root client builds this once and
// delegates lifecycle methods to the matching flow implementation.
type Deps struct {
	Renew RenewDeps
	Store StoreDeps
}
