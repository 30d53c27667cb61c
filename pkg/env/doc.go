// pkg/env/doc.go
package env

/*
Package env discovers tools and libraries under an install root.

It handles:
  - Locating binary, library, include and pkg-config directories
  - Finding specific libraries within an installation
  - Synthesizing compiler and linker flags

Basic Usage:

    import "github.com/arc-language/devshell/pkg/env"

    e := env.New("/opt/devshell/openssl")

    ssl := e.FindLibrary("ssl")
    if ssl != nil {
        fmt.Printf("Found: %s at %s\n", ssl.Name, ssl.Path)
    }

    flags, err := e.FlagsFor("ssl")
    if err == nil {
        fmt.Println(flags) // -I/opt/devshell/openssl/include -L... -lssl
    }

Layouts:

Install roots come in two shapes: flat store-style roots (bin/, lib/,
include/) and FHS-style roots (usr/bin, usr/lib, ...). The default layout
searches both; catalog entries may narrow the search with explicit
directory lists.
*/
