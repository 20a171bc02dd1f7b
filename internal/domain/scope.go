package domain

// Scope identifies where a user lives. The zero value is the local instance; remote
// users carry the domain of their home server. It replaces the nullable host column
// convention at every boundary above the store.
type Scope struct {
	host string
}

func Local() Scope {
	return Scope{}
}

func Remote(host string) Scope {
	return Scope{host: host}
}

func (s Scope) IsLocal() bool {
	return s.host == ""
}

func (s Scope) Host() string {
	return s.host
}
