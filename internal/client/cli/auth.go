package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/hostctl/internal/common"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		fmt.Printf("Login unsuccessful: %s\n", err.Error())
		return
	}

	if user != nil {
		fmt.Printf("Logged in as %s\n", user.Email)
	} else {
		fmt.Println("Logged in")
	}
}

func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Printf("Logout error: %s\n", err.Error())
		return
	}
	fmt.Println("Logged out")
}

func (a *App) whoami(ctx context.Context) {
	user, err := a.session.RefreshUser(ctx)
	if err != nil {
		// fall back to the cached snapshot when the backend is unreachable
		user = a.session.CurrentUser(ctx)
	}
	if user == nil {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("%s (%s), balance %s\n", user.Email, user.Role, formatMoney(user.Balance))
}
