package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"
)

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Colegio de Profesionales CLI (escriba 'help' para ver los comandos)")
	if u, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "Sesión restaurada: %s\n", u.NombreCompleto())
		if w := a.tokenWarning(time.Now()); w != "" {
			fmt.Fprintln(a.out, w)
		}
	}

	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}
