// Command demo walks the entities through their validation rules on the
// console: account deposits and withdrawals, user email/password/role rules,
// employee kinds, product merging, and the aggregate counters.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/godswill-dev/guardian-be/internal/domain"
	"github.com/godswill-dev/guardian-be/internal/stats"
)

func main() {
	interactive := flag.Bool("interactive", false, "prompt for an extra deposit amount")
	flag.Parse()

	registry := stats.NewRegistry()

	section("BANK ACCOUNT")
	account := domain.NewAccount("Godswill", 100000)
	registry.Record(domain.KindAccount, "")
	fmt.Printf("opened %s for %s with balance %s\n", account.Number, account.Holder, dollars(account.Balance()))

	apply(account, "deposit", 50000, account.Deposit)
	apply(account, "withdraw", 200000, account.Withdraw)
	apply(account, "withdraw", 20000, account.Withdraw)

	if *interactive {
		amount := promptAmount("extra deposit amount in cents: ")
		apply(account, "deposit", amount, account.Deposit)
	}

	section("USER RULES")
	user, err := domain.NewUser("goddy", "goddy@gmail.com", domain.RoleUser, "initial123")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create user: %v\n", err)
		os.Exit(1)
	}
	registry.Record(domain.KindUser, user.Role())

	tryWrite("set password 'short'", user.SetPassword("short"))
	tryWrite("set password 'NewSecurePass123'", user.SetPassword("NewSecurePass123"))
	tryWrite("set email 'invalid-email'", user.SetEmail("invalid-email"))
	tryWrite("set email ' NewEmail@Example.com '", user.SetEmail(" NewEmail@Example.com "))
	fmt.Printf("email is now %q\n", user.Email())
	tryWrite("set role 'wizard'", user.SetRole("wizard"))
	tryWrite("set role 'ADMIN'", user.SetRole("ADMIN"))
	user.RecordLogin(time.Now())
	fmt.Printf("%s logged in at %s\n", user.Username, user.LastLogin().Format("15:04:05"))

	section("USER STATISTICS")
	roles := []string{domain.RoleDeveloper, domain.RoleDeveloper, domain.RoleAdmin, domain.RoleUser, domain.RoleUser, domain.RoleUser}
	for i, role := range roles {
		u, err := domain.NewUser(fmt.Sprintf("user%d", i+1), fmt.Sprintf("user%d@example.com", i+1), role, "password123")
		if err != nil {
			fmt.Fprintf(os.Stderr, "create user: %v\n", err)
			os.Exit(1)
		}
		registry.Record(domain.KindUser, u.Role())
	}
	snap := registry.Snapshot(domain.KindUser)
	fmt.Printf("total users: %d\n", snap.Total)
	for role, count := range snap.ByDiscriminant {
		fmt.Printf("  %-10s %d\n", role, count)
	}

	section("EMPLOYEES")
	dev1 := domain.NewDeveloper("Alice Johnson", "DEV001", 8000000, "Go")
	dev2 := domain.NewDeveloper("Bob Smith", "DEV002", 7500000, "TypeScript")
	manager := domain.NewManager("Carol Williams", "MGR001", 9500000, "Engineering")
	for _, e := range []*domain.Employee{dev1, dev2, manager} {
		registry.Record(domain.KindEmployee, string(e.Kind))
		fmt.Println(e.Work())
	}
	tryWrite("developer adds a team member", dev1.AddTeamMember(dev2))
	tryWrite("manager adds Alice", manager.AddTeamMember(dev1))
	tryWrite("manager adds Bob", manager.AddTeamMember(dev2))
	if line, err := manager.ConductMeeting(); err == nil {
		fmt.Println(line)
	}

	section("PRODUCTS")
	laptop1 := domain.Product{Name: "Laptop", PriceCents: 99999, Quantity: 5}
	laptop2 := domain.Product{Name: "Laptop", PriceCents: 99999, Quantity: 3}
	phone := domain.Product{Name: "Phone", PriceCents: 59999, Quantity: 10}
	fmt.Println(laptop1)
	fmt.Println(phone)
	fmt.Printf("laptop equals phone: %v\n", laptop1.Equal(phone))
	fmt.Printf("phone cheaper than laptop: %v\n", phone.Less(laptop1))
	if merged, err := laptop1.Merge(laptop2); err == nil {
		fmt.Printf("merged laptops: %s\n", merged)
	}
	if _, err := laptop1.Merge(phone); err != nil {
		fmt.Printf("merge laptop with phone: rejected: %v\n", err)
	}

	section("AGGREGATE COUNTS")
	for kind, s := range registry.SnapshotAll() {
		fmt.Printf("%-10s total=%d", kind, s.Total)
		for d, n := range s.ByDiscriminant {
			fmt.Printf(" %s=%d", d, n)
		}
		fmt.Println()
	}
}

func section(title string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))
}

func apply(account *domain.Account, verb string, amount int64, op func(int64) error) {
	if err := op(amount); err != nil {
		fmt.Printf("%s %s: rejected: %v (balance stays %s)\n", verb, dollars(amount), err, dollars(account.Balance()))
		return
	}
	fmt.Printf("%s %s: new balance %s\n", verb, dollars(amount), dollars(account.Balance()))
}

func tryWrite(what string, err error) {
	if err != nil {
		fmt.Printf("%s: rejected: %v\n", what, err)
		return
	}
	fmt.Printf("%s: ok\n", what)
}

// promptAmount reads one amount from stdin. A value that does not parse as a
// number is a fatal input error.
func promptAmount(prompt string) int64 {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	amount, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid amount %q: expected a whole number of cents\n", strings.TrimSpace(line))
		os.Exit(1)
	}
	return amount
}

func dollars(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
