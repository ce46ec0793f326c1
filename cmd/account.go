// Package cmd implements the command-line interface for zaisan.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zaisan-cli/zaisan/color"
	"github.com/zaisan-cli/zaisan/icon"
	"github.com/zaisan-cli/zaisan/key"
	"github.com/zaisan-cli/zaisan/provider/zaimanhua"
	"github.com/zaisan-cli/zaisan/style"
	"github.com/zaisan-cli/zaisan/util"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.SetOut(os.Stdout)

	loginCmd.Flags().StringP("username", "u", "", "Account username")
	loginCmd.Flags().StringP("password", "p", "", "Account password (prompted when omitted)")
}

// loginCmd authenticates against the Zaimanhua account service.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to a Zaimanhua account",
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if username == "" {
			input := survey.Input{Message: "Username:"}
			handleErr(survey.AskOne(&input, &username, survey.WithValidator(survey.Required)))
		}

		if password == "" {
			input := survey.Password{Message: "Password:"}
			handleErr(survey.AskOne(&input, &password, survey.WithValidator(survey.Required)))
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Logging in...", icon.Get(icon.Lock)))
		err := zaimanhua.New().Login(username, password)
		erase()
		handleErr(err)

		cmd.Printf("%s Logged in as %s\n", icon.Get(icon.Success), style.Fg(color.Cyan)(username))

		if !viper.GetBool(key.AccountEnhancedMode) {
			cmd.Printf(
				"Enable enhanced mode to use the account during searches: %s\n",
				style.Fg(color.Yellow)(fmt.Sprintf("zaisan config set %s true", key.AccountEnhancedMode)),
			)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.SetOut(os.Stdout)
}

// logoutCmd drops the stored session and credentials.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored credentials",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(zaimanhua.Logout())
		cmd.Printf("%s Logged out\n", icon.Get(icon.Success))
	},
}

func init() {
	rootCmd.AddCommand(checkinCmd)
	checkinCmd.SetOut(os.Stdout)
}

// checkinCmd performs the daily account check-in.
var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Perform the daily account check-in",
	Run: func(cmd *cobra.Command, args []string) {
		erase := util.PrintErasable(fmt.Sprintf("%s Checking in...", icon.Get(icon.Progress)))
		ok, err := zaimanhua.New().CheckIn()
		erase()
		handleErr(err)

		if ok {
			cmd.Printf("%s Checked in\n", icon.Get(icon.Success))
		} else {
			cmd.Printf("%s Check-in was not accepted\n", icon.Get(icon.Fail))
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.SetOut(os.Stdout)
}

// whoamiCmd displays the logged-in account's profile.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Display the logged-in account",
	Run: func(cmd *cobra.Command, args []string) {
		if !zaimanhua.LoggedIn() {
			cmd.Printf("%s Not logged in\n", icon.Get(icon.Fail))
			return
		}

		info, err := zaimanhua.New().AccountInfo()
		handleErr(err)

		name := info.Nickname
		if name == "" {
			name = info.Username
		}

		cmd.Printf("%s %s\n", icon.Get(icon.Success), style.Bold(name))
		cmd.Printf("  %s %d\n", style.Faint("Level     "), info.Level)

		checkedIn := style.Fg(color.Red)("no")
		if info.IsSign {
			checkedIn = style.Fg(color.Green)("yes")
		}
		cmd.Printf("  %s %s\n", style.Faint("Checked in"), checkedIn)
	},
}
