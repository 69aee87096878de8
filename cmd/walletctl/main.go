package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[91m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorBlue   = "\033[94m"
	colorBold   = "\033[1m"
)

// ui bundles the API client with the interactive terminal state.
type ui struct {
	client  *apiClient
	in      *bufio.Reader
	version string
	wallets []walletSummary
	current *walletSummary
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := os.Getenv("WALLET_MANAGER_HOST")
	if host == "" {
		host = "http://localhost:8080"
	}
	apiKey := os.Getenv("X_API_KEY")
	if apiKey == "" {
		fmt.Println(colorRed + "Error: X_API_KEY not set" + colorReset)
		os.Exit(1)
	}

	app := &ui{
		client: newAPIClient(strings.TrimRight(host, "/"), apiKey),
		in:     bufio.NewReader(os.Stdin),
	}

	version, err := app.client.Version()
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.Status == 403 {
			fmt.Println(colorRed + "Error: Invalid API-Key" + colorReset)
		} else {
			fmt.Printf(colorRed+"Error: Failed to connect to the API: %v"+colorReset+"\n", err)
		}
		os.Exit(1)
	}
	app.version = version

	app.refreshWallets()
	if len(app.wallets) > 0 {
		app.current = &app.wallets[0]
	}

	app.menu()
}

func (u *ui) prompt(label string) string {
	fmt.Print(label)
	line, _ := u.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (u *ui) pause() {
	fmt.Print("\nPress Enter to continue...")
	_, _ = u.in.ReadString('\n')
}

func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

func (u *ui) refreshWallets() {
	wallets, err := u.client.ListWallets()
	if err != nil {
		fmt.Printf(colorRed+"Error: Failed to get wallets: %v"+colorReset+"\n", err)
		u.wallets = nil
		return
	}
	u.wallets = wallets
}

func (u *ui) menu() {
	clearScreen()
	for {
		fmt.Printf("\n"+colorGreen+"ETH Wallet Manager"+colorReset+" v%s\n", u.version)
		if u.current != nil {
			fmt.Printf("Wallet:\t\t%s\n", u.current.Address)
			fmt.Printf("Balance:\t%s\n\n", u.current.Balance)
		} else {
			fmt.Printf("Wallet:\t\tNo wallet selected\n\n")
		}
		fmt.Println("1  Send ETH")
		fmt.Println("2  Change wallet")
		fmt.Println("3  Wallet Settings")
		fmt.Println("4  Exit")

		switch u.prompt("\nOption > ") {
		case "1":
			u.sendETH()
		case "2":
			u.changeWallet()
		case "3":
			u.settings()
		case "4", "exit":
			fmt.Println(colorRed + "Exiting..." + colorReset)
			return
		default:
			fmt.Println("\n" + colorRed + "Invalid option" + colorReset)
		}
	}
}

func (u *ui) settings() {
	for {
		clearScreen()
		fmt.Print("\n" + colorGreen + "Wallet Settings" + colorReset + "\n\n")
		fmt.Println("1  Create new wallet")
		fmt.Println("2  Import wallet")
		fmt.Println("3  Delete current wallet")
		fmt.Println("4  Show transactions")
		fmt.Println("5  Back")

		switch u.prompt("\nOption > ") {
		case "1":
			u.createWallet()
		case "2":
			u.importWallet()
		case "3":
			u.deleteWallet()
		case "4":
			u.showTransactions()
		case "5":
			clearScreen()
			return
		default:
			fmt.Println("\n" + colorRed + "Invalid option" + colorReset)
		}
	}
}

func (u *ui) createWallet() {
	clearScreen()
	fmt.Print("\n" + colorGreen + "Create new wallet" + colorReset + "\n\n")

	name := u.prompt("Wallet Name > ")
	wallet, err := u.client.CreateWallet(name)
	if err != nil {
		fmt.Printf("\n"+colorRed+"Error: %v"+colorReset+"\n", err)
		u.pause()
		return
	}

	fmt.Println("\n" + colorGreen + "Wallet successfully created!" + colorReset)
	fmt.Printf("\nWallet Name: "+colorGreen+"%s"+colorReset+"\n", wallet.WalletName)
	fmt.Printf("Address: "+colorGreen+"%s"+colorReset+"\n", wallet.Address)
	fmt.Printf("Private Key: "+colorYellow+"%s"+colorReset+"\n", wallet.PrivateKey)
	if wallet.MnemonicPhrase != "" {
		fmt.Println("\n" + colorRed + "IMPORTANT: Save this Mnemonic Phrase securely!" + colorReset)
		fmt.Println(colorYellow + wallet.MnemonicPhrase + colorReset)
	}
	fmt.Println("\n" + colorRed + "IMPORTANT: Save the Private Key and the Mnemonic Phrase securely!" + colorReset)
	fmt.Println(colorRed + "If you lose them, you will not be able to access your Wallet!" + colorReset)
	u.pause()

	u.refreshWallets()
	if len(u.wallets) > 0 {
		u.current = &u.wallets[len(u.wallets)-1]
	}
}

func (u *ui) importWallet() {
	clearScreen()
	fmt.Print("\n" + colorGreen + "Import wallet" + colorReset + "\n\n")

	name := u.prompt("Wallet Name > ")
	privateKey := u.prompt("Private Key > ")

	if _, err := u.client.ImportWallet(name, privateKey); err != nil {
		fmt.Printf("\n"+colorRed+"Error: %v"+colorReset+"\n", err)
		u.pause()
		return
	}

	fmt.Println("\n" + colorGreen + "Wallet successfully imported!" + colorReset)
	u.refreshWallets()
	if len(u.wallets) > 0 {
		u.current = &u.wallets[len(u.wallets)-1]
	}
}

func (u *ui) deleteWallet() {
	clearScreen()
	if u.current == nil {
		fmt.Println("\n" + colorRed + "No wallet selected!" + colorReset)
		u.pause()
		return
	}

	fmt.Println("\n" + colorGreen + "Delete wallet" + colorReset)
	fmt.Printf("\nWallet: "+colorGreen+"%s"+colorReset+"\n", u.current.WalletName)
	fmt.Printf("Address: "+colorGreen+"%s"+colorReset+"\n", u.current.Address)
	fmt.Println("\nDo you really want to delete this wallet?")
	fmt.Printf("Type "+colorRed+"%s delete"+colorReset+" to confirm\n", u.current.Address)

	confirm := u.prompt("\n> ")
	if !strings.EqualFold(confirm, u.current.Address+" delete") {
		fmt.Println("\n" + colorRed + "Deletion process aborted!" + colorReset)
		u.pause()
		return
	}

	if err := u.client.DeleteWallet(u.current.Address); err != nil {
		fmt.Printf("\n"+colorRed+"Error: %v"+colorReset+"\n", err)
		u.pause()
		return
	}

	fmt.Println("\n" + colorGreen + "Wallet successfully deleted!" + colorReset)
	u.refreshWallets()
	if len(u.wallets) > 0 {
		u.current = &u.wallets[0]
	} else {
		u.current = nil
	}
	u.pause()
}

func (u *ui) showTransactions() {
	clearScreen()
	if u.current == nil {
		fmt.Println("\n" + colorRed + "No wallet selected!" + colorReset)
		u.pause()
		return
	}

	fmt.Println("\n" + colorGreen + "Show transactions" + colorReset)
	fmt.Printf("Wallet: ["+colorGreen+"%s"+colorReset+"] "+colorGreen+"%s"+colorReset+"\n",
		u.current.WalletName, u.current.Address)

	txs, err := u.client.ListWalletTransactions(u.current.Address)
	if err != nil {
		fmt.Printf("\n"+colorRed+"Error: %v"+colorReset+"\n", err)
		u.pause()
		return
	}

	if len(txs) == 0 {
		fmt.Println("\n" + colorYellow + "No transactions found" + colorReset)
		u.pause()
		return
	}

	fmt.Printf("\n"+colorYellow+"%d transactions found"+colorReset+"\n", len(txs))
	for _, tx := range txs {
		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Printf("\nTransaction Hash: "+colorGreen+"%s"+colorReset+"\n", tx.TxHash)
		fmt.Printf("Timestamp: %s\n", tx.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Sender: "+colorBlue+"%s"+colorReset+"\n", tx.FromAddress)
		fmt.Printf("Receiver: "+colorBlue+"%s"+colorReset+"\n", tx.ToAddress)
		fmt.Printf("Amount: "+colorBold+"%s ETH"+colorReset+"\n", tx.Amount)
		if tx.GasUsed != nil {
			fmt.Printf("Gas: %s ETH\n", *tx.GasUsed)
		}
		fmt.Printf("Status: %s%s%s\n", statusColor(tx.Status), tx.Status, colorReset)
	}
	fmt.Println("\n" + strings.Repeat("=", 60))
	u.pause()
}

func statusColor(status string) string {
	switch status {
	case "SUCCESS":
		return colorGreen
	case "PENDING", "SUBMITTING":
		return colorYellow
	default:
		return colorRed
	}
}

func (u *ui) changeWallet() {
	clearScreen()
	fmt.Println("\n" + colorGreen + "Available wallets:" + colorReset)
	if len(u.wallets) == 0 {
		fmt.Println("\n" + colorRed + "No wallets available!" + colorReset)
		u.pause()
		return
	}

	for i, wallet := range u.wallets {
		fmt.Printf("%d - "+colorGreen+"[%s]"+colorReset+" %s - %s ETH\n",
			i+1, wallet.WalletName, wallet.Address, wallet.Balance.Round(4))
	}

	choice := u.prompt("\nNumber > ")
	var idx int
	if _, err := fmt.Sscanf(choice, "%d", &idx); err != nil || idx < 1 || idx > len(u.wallets) {
		fmt.Println("\n" + colorRed + "Invalid selection" + colorReset)
		u.pause()
		return
	}

	u.current = &u.wallets[idx-1]
	fmt.Println("\n" + colorGreen + "Wallet switched" + colorReset)
	clearScreen()
}

func (u *ui) sendETH() {
	clearScreen()
	if u.current == nil {
		fmt.Println("\n" + colorRed + "No wallet selected!" + colorReset)
		u.pause()
		return
	}

	toAddress := u.prompt("Receiver address > ")
	amountRaw := u.prompt("ETH amount > ")
	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		fmt.Println("\n" + colorRed + "Invalid amount" + colorReset)
		u.pause()
		return
	}

	// The key never leaves the manager except through this authenticated read.
	wallet, err := u.client.GetWallet(u.current.Address)
	if err != nil {
		fmt.Printf("\n"+colorRed+"Error fetching private key: %v"+colorReset+"\n", err)
		u.pause()
		return
	}

	txHash, err := u.client.Send(sendRequest{
		FromAddress: u.current.Address,
		ToAddress:   toAddress,
		Amount:      amount,
		PrivateKey:  wallet.PrivateKey,
	})
	if err != nil {
		fmt.Printf("\n"+colorRed+"Error: %v"+colorReset+"\n", err)
		u.pause()
		return
	}

	fmt.Printf("\n"+colorGreen+"Transaction sent: %s"+colorReset+"\n", txHash)
	fmt.Printf("Receiver: "+colorBlue+"%s"+colorReset+"\n", toAddress)
	fmt.Printf("Amount: "+colorBlue+"%s ETH"+colorReset+"\n", amount)
	fmt.Println("To track the status of the transaction, go to the " + colorBlue + "Wallet Settings" + colorReset +
		" and select " + colorBlue + "Show transactions" + colorReset + ".")
	u.pause()
}
