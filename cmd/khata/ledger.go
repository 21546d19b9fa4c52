package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"ekthaa/internal/catalog"
	"ekthaa/internal/domain"
	"ekthaa/internal/form"
	"ekthaa/internal/invoice"
	"ekthaa/internal/reminder"
)

func productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "list and add inventory products",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list products, optionally filtered",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "search"},
				},
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					products, err := s.client.ListProducts(c.Context, domain.ProductFilter{
						Category: c.String("category"),
						Search:   c.String("search"),
					})
					if err != nil {
						return userError(err)
					}
					return emit(c, products, func(out io.Writer) error {
						w := table(out)
						fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSTOCK\tPRICE\t")
						for i := range products {
							p := &products[i]
							low := ""
							if p.IsLowStock {
								low = "low stock"
							}
							fmt.Fprintf(w, "%s\t%s\t%s\t%d %s\t%s\t%s\n",
								p.ID, p.Name, p.Category, p.StockQuantity, p.Unit, invoice.FormatMoney(p.Price), low)
						}
						return w.Flush()
					})
				},
			},
			{
				Name:  "add",
				Usage: "add a product",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "category", Usage: "inventory category name"},
					&cli.StringFlag{Name: "subcategory"},
					&cli.StringFlag{Name: "stock", Value: "0"},
					&cli.StringFlag{Name: "unit", Value: domain.ProductUnits[0]},
					&cli.StringFlag{Name: "price"},
					&cli.StringFlag{Name: "hsn"},
					&cli.StringFlag{Name: "threshold", Usage: "low stock threshold"},
					&cli.BoolFlag{Name: "public", Usage: "show on the public business page"},
					&cli.StringFlag{Name: "image", Usage: "product image file"},
				},
				Action: func(c *cli.Context) error {
					image, err := readAttachment(c.String("image"))
					if err != nil {
						return err
					}
					d := form.NewProductDraft()
					d.Name = c.String("name")
					d.Description = c.String("description")
					d.Category = c.String("category")
					d.Subcategory = c.String("subcategory")
					d.StockQuantity = c.String("stock")
					d.Unit = c.String("unit")
					d.Price = c.String("price")
					d.HSNCode = c.String("hsn")
					if v := c.String("threshold"); v != "" {
						d.LowStockThreshold = v
					}
					d.IsPublic = c.Bool("public")
					d.Image = image

					validate := func() error { return d.Validate(catalog.Inventory()) }
					return submit(c, validate, "Failed to save product", "Product added successfully",
						func(ctx context.Context, s *session) error {
							_, err := s.client.AddProduct(ctx, d.ToRequest())
							return err
						})
				},
			},
		},
	}
}

func transactionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "transactions",
		Usage: "record and list credit and payment entries",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list transactions, optionally for one customer",
				Flags: []cli.Flag{&cli.StringFlag{Name: "customer"}},
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					var txns []domain.Transaction
					if id := c.String("customer"); id != "" {
						txns, err = s.client.CustomerTransactions(c.Context, id)
					} else {
						txns, err = s.client.ListTransactions(c.Context)
					}
					if err != nil {
						return userError(err)
					}
					return emit(c, txns, func(out io.Writer) error {
						w := table(out)
						fmt.Fprintln(w, "DATE\tCUSTOMER\tTYPE\tAMOUNT\tNOTES")
						for i := range txns {
							tx := &txns[i]
							fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
								tx.CreatedAt, tx.CustomerName, tx.TransactionType, reminder.FormatRupees(tx.Amount), tx.Notes)
						}
						return w.Flush()
					})
				},
			},
			{
				Name:  "add",
				Usage: "record a credit or payment",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "customer", Usage: "customer id"},
					&cli.StringFlag{Name: "type", Value: string(domain.TransactionCredit), Usage: "credit or payment"},
					&cli.StringFlag{Name: "amount"},
					&cli.StringFlag{Name: "notes"},
					&cli.StringFlag{Name: "bill", Usage: "bill photo to attach"},
				},
				Action: func(c *cli.Context) error {
					bill, err := readAttachment(c.String("bill"))
					if err != nil {
						return err
					}
					d := form.TransactionDraft{
						CustomerID: c.String("customer"),
						Type:       c.String("type"),
						Amount:     c.String("amount"),
						Notes:      c.String("notes"),
						BillPhoto:  bill,
					}
					return submit(c, d.Validate, "Failed to add transaction", "Transaction added successfully",
						func(ctx context.Context, s *session) error {
							_, err := s.client.CreateTransaction(ctx, d.ToRequest())
							return err
						})
				},
			},
		},
	}
}

func recurringCommand() *cli.Command {
	return &cli.Command{
		Name:  "recurring",
		Usage: "manage scheduled credit entries",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					items, err := s.client.ListRecurring(c.Context)
					if err != nil {
						return userError(err)
					}
					return emit(c, items, func(out io.Writer) error {
						w := table(out)
						fmt.Fprintln(w, "ID\tCUSTOMER\tAMOUNT\tFREQUENCY\tNEXT\tACTIVE")
						for i := range items {
							r := &items[i]
							fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n",
								r.ID, r.CustomerName, reminder.FormatRupees(r.Amount), r.Frequency, r.NextExecutionDate, r.IsActive)
						}
						return w.Flush()
					})
				},
			},
			{
				Name:  "add",
				Usage: "schedule a recurring credit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "customer", Usage: "customer id"},
					&cli.StringFlag{Name: "amount"},
					&cli.StringFlag{Name: "frequency", Value: string(domain.FrequencyMonthly), Usage: "daily, weekly or monthly"},
					&cli.StringFlag{Name: "notes"},
				},
				Action: func(c *cli.Context) error {
					d := form.RecurringDraft{
						CustomerID: c.String("customer"),
						Amount:     c.String("amount"),
						Frequency:  c.String("frequency"),
						Notes:      c.String("notes"),
					}
					return submit(c, d.Validate, "Failed to create recurring transaction", "Recurring transaction created",
						func(ctx context.Context, s *session) error {
							_, err := s.client.CreateRecurring(ctx, d.ToRequest())
							return err
						})
				},
			},
		},
	}
}

func vouchersCommand() *cli.Command {
	return &cli.Command{
		Name:  "vouchers",
		Usage: "list and switch discount vouchers",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					vouchers, err := s.client.ListVouchers(c.Context)
					if err != nil {
						return userError(err)
					}
					return emit(c, vouchers, func(out io.Writer) error {
						w := table(out)
						fmt.Fprintln(w, "ID\tCODE\tDISCOUNT\tVALID UNTIL\tACTIVE")
						for i := range vouchers {
							v := &vouchers[i]
							fmt.Fprintf(w, "%s\t%s\t%s%%\t%s\t%t\n", v.ID, v.Code, invoice.FormatRate(v.Discount), v.ValidUntil, v.IsActive)
						}
						return w.Flush()
					})
				},
			},
			{
				Name:      "toggle",
				ArgsUsage: "VOUCHER_ID",
				Action: func(c *cli.Context) error {
					return toggle(c, "voucher", func(ctx context.Context, s *session, id string) (bool, error) {
						return s.client.ToggleVoucher(ctx, id)
					})
				},
			},
		},
	}
}

func offersCommand() *cli.Command {
	return &cli.Command{
		Name:  "offers",
		Usage: "list and switch promotional offers",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					offers, err := s.client.ListOffers(c.Context)
					if err != nil {
						return userError(err)
					}
					return emit(c, offers, func(out io.Writer) error {
						w := table(out)
						fmt.Fprintln(w, "ID\tTITLE\tDISCOUNT\tVALID UNTIL\tACTIVE")
						for i := range offers {
							o := &offers[i]
							fmt.Fprintf(w, "%s\t%s\t%s%%\t%s\t%t\n", o.ID, o.Title, invoice.FormatRate(o.Discount), o.ValidUntil, o.IsActive)
						}
						return w.Flush()
					})
				},
			},
			{
				Name:      "toggle",
				ArgsUsage: "OFFER_ID",
				Action: func(c *cli.Context) error {
					return toggle(c, "offer", func(ctx context.Context, s *session, id string) (bool, error) {
						return s.client.ToggleOffer(ctx, id)
					})
				},
			},
		},
	}
}

func toggle(c *cli.Context, kind string, fn func(context.Context, *session, string) (bool, error)) error {
	id := c.Args().First()
	if id == "" {
		return cli.Exit(kind+" id is required", 1)
	}
	s, err := newSession(c)
	if err != nil {
		return err
	}
	active, err := fn(c.Context, s, id)
	if err != nil {
		return userError(err)
	}
	state := "inactive"
	if active {
		state = "active"
	}
	return emit(c, map[string]any{"id": id, "is_active": active}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s is now %s\n", kind, id, state)
		return err
	})
}
