package productsearch

// Version is set at build time with -ldflags "-X github.com/a-h/productsearch.Version=...".
var Version = "dev"
