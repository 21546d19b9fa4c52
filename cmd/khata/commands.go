package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"ekthaa/internal/catalog"
	"ekthaa/internal/domain"
	"ekthaa/internal/form"
	"ekthaa/internal/invoice"
	"ekthaa/internal/reminder"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "phone", Required: true},
			&cli.StringFlag{Name: "password", EnvVars: []string{"EKTHAA_PASSWORD"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			resp, err := s.client.Login(c.Context, domain.LoginInput{Phone: c.String("phone"), Password: c.String("password")})
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(c.App.Writer, "Logged in as %s (%s)\n", resp.User.BusinessName, resp.User.Phone)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "end the session and forget the token",
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			if err := s.client.Logout(c.Context); err != nil {
				return userError(err)
			}
			fmt.Fprintln(c.App.Writer, "Logged out")
			return nil
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the logged-in business",
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			u, err := s.client.Me(c.Context)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(c.App.Writer, "%s\t%s\tPIN %s\n", u.BusinessName, u.Phone, u.BusinessPIN)
			return nil
		},
	}
}

func customersCommand() *cli.Command {
	return &cli.Command{
		Name:  "customers",
		Usage: "list, search and add customers",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list customers with balances",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					customers, err := s.client.ListCustomers(c.Context)
					if err != nil {
						return userError(err)
					}
					return printCustomers(c, customers)
				},
			},
			{
				Name:      "search",
				Usage:     "search customers by name or phone",
				ArgsUsage: "QUERY",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					customers, err := s.client.SearchCustomers(c.Context, c.Args().First())
					if err != nil {
						return userError(err)
					}
					return printCustomers(c, customers)
				},
			},
			{
				Name:  "add",
				Usage: "add a customer",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "phone"},
				},
				Action: func(c *cli.Context) error {
					d := form.CustomerDraft{Name: c.String("name"), Phone: c.String("phone")}
					var added *domain.Customer
					err := submit(c, d.Validate, "Failed to add customer", "Customer added successfully",
						func(ctx context.Context, s *session) (err error) {
							added, err = s.client.AddCustomer(ctx, d.ToRequest())
							return err
						})
					if err == nil && !c.Bool("json") {
						fmt.Fprintf(c.App.Writer, "%s (%s)\n", added.Name, added.ID)
					}
					return err
				},
			},
		},
	}
}

func printCustomers(c *cli.Context, customers []domain.Customer) error {
	return emit(c, customers, func(out io.Writer) error {
		w := table(out)
		fmt.Fprintln(w, "ID\tNAME\tPHONE\tBALANCE")
		for i := range customers {
			cu := &customers[i]
			phone := cu.PhoneNumber
			if phone == "" {
				phone = cu.Phone
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cu.ID, cu.Name, phone, reminder.FormatRupees(cu.Balance))
		}
		return w.Flush()
	})
}

func remindCommand() *cli.Command {
	return &cli.Command{
		Name:      "remind",
		Usage:     "print WhatsApp reminder links for customers with dues",
		ArgsUsage: "[CUSTOMER_ID]",
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			dash, err := s.client.Dashboard(c.Context)
			if err != nil {
				return userError(err)
			}
			customers, err := s.client.ListCustomers(c.Context)
			if err != nil {
				return userError(err)
			}
			if id := c.Args().First(); id != "" {
				filtered := customers[:0]
				for _, cu := range customers {
					if cu.ID == id {
						filtered = append(filtered, cu)
					}
				}
				if len(filtered) == 0 {
					return cli.Exit("no customer with id "+id, 1)
				}
				customers = filtered
			}

			bulk := reminder.Outstanding(customers, dash.Business.Name)
			if bulk.Count == 0 {
				fmt.Fprintln(c.App.Writer, "No customers with outstanding balance")
				return nil
			}
			for _, r := range bulk.Customers {
				fmt.Fprintf(c.App.Writer, "%s\t₹%s\t%s\n", r.Name, reminder.FormatRupees(r.Balance), r.WhatsAppURL)
			}
			return nil
		},
	}
}

func invoiceCommand() *cli.Command {
	fileFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "draft JSON file, - for stdin", Value: "-"}
	}
	return &cli.Command{
		Name:  "invoice",
		Usage: "compute and generate GST invoices from a draft JSON file",
		Subcommands: []*cli.Command{
			{
				Name:  "totals",
				Usage: "print subtotal, CGST, SGST and grand total",
				Flags: []cli.Flag{fileFlag()},
				Action: func(c *cli.Context) error {
					d, err := readDraft(c.String("file"))
					if err != nil {
						return err
					}
					disp := d.Totals().Display()
					r := d.TaxRates()
					return emit(c, disp, func(out io.Writer) error {
						w := table(out)
						fmt.Fprintf(w, "Subtotal\t%s\n", disp.Subtotal)
						fmt.Fprintf(w, "CGST @ %s%%\t%s\n", invoice.FormatRate(r.CGSTPercent), disp.CGSTAmount)
						fmt.Fprintf(w, "SGST @ %s%%\t%s\n", invoice.FormatRate(r.SGSTPercent), disp.SGSTAmount)
						fmt.Fprintf(w, "Grand Total\t%s\n", disp.GrandTotal)
						return w.Flush()
					})
				},
			},
			{
				Name:  "pdf",
				Usage: "validate the draft and download the invoice PDF",
				Flags: []cli.Flag{fileFlag(), &cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output path"}},
				Action: func(c *cli.Context) error {
					d, err := readDraft(c.String("file"))
					if err != nil {
						return err
					}
					if err := invoice.ValidateDraft(d); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					s, err := newSession(c)
					if err != nil {
						return err
					}
					content, err := s.client.GenerateInvoicePDF(c.Context, d)
					if err != nil {
						return userError(err)
					}
					out := c.String("out")
					if out == "" {
						out = invoice.PDFFilename(d.Buyer.Name, nowFunc())
					}
					if err := os.WriteFile(out, content, 0o644); err != nil {
						return fmt.Errorf("writing %s: %w", out, err)
					}
					fmt.Fprintf(c.App.Writer, "Saved %s (%d bytes)\n", out, len(content))
					return nil
				},
			},
		},
	}
}

func categoriesCommand() *cli.Command {
	tableFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "table", Value: catalog.InventoryTable, Usage: "business or inventory"}
	}
	return &cli.Command{
		Name:  "categories",
		Usage: "browse the built-in category tables",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{tableFlag()},
				Action: func(c *cli.Context) error {
					t, err := catalog.TableByName(c.String("table"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					w := table(c.App.Writer)
					for _, l1 := range t.AllLevel1() {
						fmt.Fprintf(w, "%s\t%s\t%s\t%d options\n", l1.Icon, l1.ID, l1.Name, len(l1.Level2Options))
					}
					return w.Flush()
				},
			},
			{
				Name:      "options",
				ArgsUsage: "CATEGORY_ID",
				Flags:     []cli.Flag{tableFlag()},
				Action: func(c *cli.Context) error {
					t, err := catalog.TableByName(c.String("table"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					for _, o := range t.Level2Options(c.Args().First()) {
						fmt.Fprintln(c.App.Writer, o)
					}
					return nil
				},
			},
			{
				Name:      "search",
				ArgsUsage: "QUERY",
				Flags:     []cli.Flag{tableFlag()},
				Action: func(c *cli.Context) error {
					t, err := catalog.TableByName(c.String("table"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					for _, r := range t.Search(strings.Join(c.Args().Slice(), " ")) {
						if r.Level == 1 {
							fmt.Fprintf(c.App.Writer, "%s %s\n", r.Icon, r.Category)
						} else {
							fmt.Fprintf(c.App.Writer, "%s %s > %s\n", r.Icon, r.Category, r.Subcategory)
						}
					}
					return nil
				},
			},
		},
	}
}

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "check the backend is reachable",
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			status, err := s.client.Health(c.Context)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(c.App.Writer, status)
			return nil
		},
	}
}
