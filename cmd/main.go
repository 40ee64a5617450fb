// cmd/main.go
package main

import (
	"database/sql"
	"fmt"
	"image/color"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal"
	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/export"
	"github.com/reinhardt-bit/OrderFlow-Pricing/shared/db"
)

func main() {
	myApp := app.NewWithID("com.orderflow.manager")
	myWindow := myApp.NewWindow("OrderFlow Manager")

	cfg, err := db.LoadConfig()
	if err != nil {
		log.WithError(err).Error("error loading configuration")
	}
	configureLogging(cfg)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Warn("database configuration validation failed")

		showDatabaseConfigDialog(myWindow, func() {
			cfg, err := db.LoadConfig()
			if err != nil {
				dialog.ShowError(err, myWindow)
				return
			}
			database, err := db.InitDB(cfg)
			if err != nil {
				dialog.ShowError(err, myWindow)
				return
			}
			initializeMainApp(myWindow, database)
		})
	} else {
		database, err := db.InitDB(cfg)
		if err != nil {
			log.WithError(err).Error("error opening database")
			dialog.ShowError(err, myWindow)
		} else {
			initializeMainApp(myWindow, database)
		}
	}

	myWindow.ShowAndRun()
}

func configureLogging(cfg db.Config) {
	if cfg.Debug {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func showAddProductDialog(window fyne.Window, database *sql.DB) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Nome do produto")

	codeEntry := widget.NewEntry()
	codeEntry.SetPlaceHolder("Código (opcional)")

	priceEntry := widget.NewEntry()
	priceEntry.SetPlaceHolder("Preço")

	categoryEntry := widget.NewEntry()
	categoryEntry.SetPlaceHolder("Categoria")

	content := container.NewVBox(nameEntry, codeEntry, priceEntry, categoryEntry)

	d := dialog.NewCustomConfirm("Novo produto", "Adicionar", "Cancelar", content,
		func(submit bool) {
			if !submit {
				return
			}
			if strings.TrimSpace(nameEntry.Text) == "" {
				dialog.ShowError(fmt.Errorf("informe o nome do produto"), window)
				return
			}

			p := engine.ProductCatalogEntry{
				Name:      strings.TrimSpace(nameEntry.Text),
				Code:      strings.TrimSpace(codeEntry.Text),
				BasePrice: engine.ParseAmount(priceEntry.Text),
				Category:  strings.TrimSpace(categoryEntry.Text),
			}
			if _, err := internal.AddProduct(database, p); err != nil {
				dialog.ShowError(err, window)
				return
			}
			log.WithField("product", p.Name).Info("product added")
			dialog.ShowInformation("Sucesso", "Produto adicionado", window)
		},
		window,
	)
	d.Show()
}

func showManageProductsDialog(window fyne.Window, database *sql.DB) {
	products, err := internal.LoadProducts(database)
	if err != nil {
		dialog.ShowError(err, window)
		return
	}

	list := widget.NewList(
		func() int { return len(products) },
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewLabel("Template"),
				widget.NewButton("Editar", func() {}),
				widget.NewButton("Desativar", func() {}),
			)
		},
		func(id widget.ListItemID, cell fyne.CanvasObject) {
			box := cell.(*fyne.Container)
			label := box.Objects[0].(*widget.Label)
			editBtn := box.Objects[1].(*widget.Button)
			deactivateBtn := box.Objects[2].(*widget.Button)

			product := products[id]
			label.SetText(fmt.Sprintf("%s - %s", product.DisplayKey(), engine.FormatBRL(product.BasePrice)))

			editBtn.OnTapped = func() {
				showEditProductDialog(window, database, product)
			}
			deactivateBtn.OnTapped = func() {
				dialog.ShowConfirm("Desativar produto",
					"O produto não aparecerá em novos pedidos. Continuar?",
					func(confirm bool) {
						if !confirm {
							return
						}
						if err := internal.DeactivateProduct(database, product.ID); err != nil {
							dialog.ShowError(err, window)
							return
						}
						showManageProductsDialog(window, database)
					},
					window,
				)
			}
		},
	)

	d := dialog.NewCustom("Produtos", "Fechar", list, window)
	d.Resize(fyne.NewSize(600, 400))
	d.Show()
}

func showEditProductDialog(window fyne.Window, database *sql.DB, product engine.ProductCatalogEntry) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(product.Name)

	codeEntry := widget.NewEntry()
	codeEntry.SetText(product.Code)

	priceEntry := widget.NewEntry()
	priceEntry.SetText(engine.FormatAmount(product.BasePrice))

	categoryEntry := widget.NewEntry()
	categoryEntry.SetText(product.Category)

	content := container.NewVBox(nameEntry, codeEntry, priceEntry, categoryEntry)

	d := dialog.NewCustomConfirm("Editar produto", "Salvar", "Cancelar", content,
		func(submit bool) {
			if !submit {
				return
			}
			product.Name = strings.TrimSpace(nameEntry.Text)
			product.Code = strings.TrimSpace(codeEntry.Text)
			product.BasePrice = engine.ParseAmount(priceEntry.Text)
			product.Category = strings.TrimSpace(categoryEntry.Text)

			if err := internal.UpdateProduct(database, product); err != nil {
				dialog.ShowError(err, window)
				return
			}
			showManageProductsDialog(window, database)
		},
		window,
	)
	d.Resize(fyne.NewSize(400, 300))
	d.Show()
}

func showAddClientDialog(window fyne.Window, database *sql.DB) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Nome")
	documentEntry := widget.NewEntry()
	documentEntry.SetPlaceHolder("CPF ou CNPJ")
	phoneEntry := widget.NewEntry()
	phoneEntry.SetPlaceHolder("Telefone")
	streetEntry := widget.NewEntry()
	streetEntry.SetPlaceHolder("Rua")
	numberEntry := widget.NewEntry()
	numberEntry.SetPlaceHolder("Número")
	districtEntry := widget.NewEntry()
	districtEntry.SetPlaceHolder("Bairro")
	cityEntry := widget.NewEntry()
	cityEntry.SetPlaceHolder("Cidade")
	stateEntry := widget.NewEntry()
	stateEntry.SetPlaceHolder("UF")
	zipEntry := widget.NewEntry()
	zipEntry.SetPlaceHolder("CEP")

	content := container.NewVBox(
		nameEntry, documentEntry, phoneEntry,
		streetEntry, numberEntry, districtEntry, cityEntry, stateEntry, zipEntry,
	)

	d := dialog.NewCustomConfirm("Novo cliente", "Adicionar", "Cancelar", content,
		func(submit bool) {
			if !submit {
				return
			}
			c := engine.ClientRecord{
				Name:     strings.TrimSpace(nameEntry.Text),
				Document: strings.TrimSpace(documentEntry.Text),
				Phone:    strings.TrimSpace(phoneEntry.Text),
				Address: engine.Address{
					Street:   strings.TrimSpace(streetEntry.Text),
					Number:   strings.TrimSpace(numberEntry.Text),
					District: strings.TrimSpace(districtEntry.Text),
					City:     strings.TrimSpace(cityEntry.Text),
					State:    strings.TrimSpace(stateEntry.Text),
					ZIP:      strings.TrimSpace(zipEntry.Text),
				},
			}
			if c.Name == "" {
				dialog.ShowError(fmt.Errorf("informe o nome do cliente"), window)
				return
			}
			if c.Document != "" && c.DocumentKind() == engine.DocumentNone {
				dialog.ShowError(fmt.Errorf("documento deve ser um CPF ou CNPJ"), window)
				return
			}
			if _, err := internal.AddClient(database, c); err != nil {
				dialog.ShowError(err, window)
				return
			}
			dialog.ShowInformation("Sucesso", "Cliente adicionado", window)
		},
		window,
	)
	d.Resize(fyne.NewSize(500, 500))
	d.Show()
}

func showManageClientsDialog(window fyne.Window, database *sql.DB) {
	clients, err := internal.LoadClients(database)
	if err != nil {
		dialog.ShowError(err, window)
		return
	}

	list := widget.NewTable(
		func() (int, int) {
			return len(clients), 1
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewLabel("Template"),
				widget.NewButton("Desativar", func() {}),
			)
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			box := cell.(*fyne.Container)
			label := box.Objects[0].(*widget.Label)
			deactivateBtn := box.Objects[1].(*widget.Button)

			client := clients[id.Row]
			label.SetText(client.DisplayKey())

			deactivateBtn.OnTapped = func() {
				dialog.ShowConfirm("Desativar cliente",
					"O cliente não aparecerá em novos pedidos. Continuar?",
					func(confirm bool) {
						if !confirm {
							return
						}
						if err := internal.DeactivateClient(database, client.ID); err != nil {
							dialog.ShowError(err, window)
							return
						}
						log.WithField("client_id", client.ID).Info("client deactivated")
						showManageClientsDialog(window, database)
					},
					window,
				)
			}
		},
	)
	list.SetColumnWidth(0, 450)

	d := dialog.NewCustom("Clientes", "Fechar", container.NewVScroll(list), window)
	d.Resize(fyne.NewSize(550, 400))
	d.Show()
}

// showOrderDialog opens the order form. A nil existing creates a new order;
// otherwise the form starts from that order and saving rewrites it.
func showOrderDialog(window fyne.Window, database *sql.DB, calc engine.DeadlineCalculator, existing *internal.Order, refreshTable func()) {
	products, err := internal.LoadProducts(database)
	if err != nil {
		dialog.ShowError(err, window)
		return
	}
	clients, err := internal.LoadClients(database)
	if err != nil {
		dialog.ShowError(err, window)
		return
	}
	form := newOrderForm(engine.NewCatalogIndex(products), engine.NewClientIndex(clients), calc)
	title := "Novo pedido"
	if existing != nil {
		form.loadOrder(*existing)
		title = "Editar pedido"
	}

	clientLabel := widget.NewLabel("")
	refreshClient := func() {
		if c, ok := form.client(); ok {
			clientLabel.SetText("Cliente: " + c.Name)
		} else {
			clientLabel.SetText("Cliente avulso")
		}
	}
	clientEntry := widget.NewSelectEntry(form.clients.DisplayKeys())
	clientEntry.SetPlaceHolder("Cliente")
	clientEntry.OnChanged = func(text string) {
		form.clientText = text
		refreshClient()
	}

	contactEntry := widget.NewEntry()
	contactEntry.SetPlaceHolder("Contato")
	contactEntry.OnChanged = func(text string) { form.contact = text }

	productHint := widget.NewLabel("")
	productEntry := widget.NewSelectEntry(form.catalog.Names())
	productEntry.SetPlaceHolder("Produto")
	productEntry.OnChanged = func(text string) { productHint.SetText(form.productHint(text)) }

	priceEntry := widget.NewEntry()
	priceEntry.SetPlaceHolder("Preço (item avulso)")

	colorSelect := widget.NewSelect(colorOptions, nil)
	colorSelect.SetSelected(engine.ColorPlaceholder)

	reinforcedCheck := widget.NewCheck(fmt.Sprintf("Reforçado (+%s)", engine.FormatBRL(engine.ReinforcementSurcharge)), nil)

	totalsLabel := widget.NewLabel("")
	deliveryLabel := widget.NewLabel("")
	refreshTotals := func() {
		t := form.totals()
		totalsLabel.SetText(fmt.Sprintf("Itens: %s  Frete: %s  Desconto: %s  Total: %s",
			engine.FormatBRL(t.ItemsSubtotal), engine.FormatBRL(t.Freight),
			engine.FormatBRL(t.Discount), engine.FormatBRL(t.GrandTotal)))
	}
	refreshDelivery := func() {
		deliveryLabel.SetText("Entrega: " + form.estimate(time.Now()).Label)
	}

	var linesList *widget.List
	linesList = widget.NewList(
		func() int { return len(form.lines) },
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewLabel("Template"),
				widget.NewButton("Reforço", func() {}),
				widget.NewButton("Remover", func() {}),
			)
		},
		func(id widget.ListItemID, cell fyne.CanvasObject) {
			box := cell.(*fyne.Container)
			label := box.Objects[0].(*widget.Label)
			toggleBtn := box.Objects[1].(*widget.Button)
			removeBtn := box.Objects[2].(*widget.Button)

			label.SetText(describeLine(form.lines[id]))
			toggleBtn.OnTapped = func() {
				form.toggleReinforced(id)
				linesList.Refresh()
				refreshTotals()
			}
			removeBtn.OnTapped = func() {
				form.removeLine(id)
				linesList.Refresh()
				refreshTotals()
			}
		},
	)

	addLineBtn := widget.NewButton("Adicionar item", func() {
		if strings.TrimSpace(productEntry.Text) == "" {
			return
		}
		line := form.addLine(engine.LineInput{
			Text:       productEntry.Text,
			PriceText:  priceEntry.Text,
			Color:      colorSelect.Selected,
			Reinforced: reinforcedCheck.Checked,
		})
		log.WithFields(log.Fields{
			"description": line.Description,
			"catalog":     line.ProductID != 0,
			"unit_price":  engine.FormatAmount(line.UnitPrice),
		}).Debug("order line added")

		productEntry.SetText("")
		priceEntry.SetText("")
		colorSelect.SetSelected(engine.ColorPlaceholder)
		reinforcedCheck.SetChecked(false)
		linesList.Refresh()
		refreshTotals()
	})

	freightEntry := widget.NewEntry()
	freightEntry.SetPlaceHolder("Frete")
	freightEntry.OnChanged = func(text string) {
		form.freightText = text
		refreshTotals()
	}

	discountEntry := widget.NewEntry()
	discountEntry.SetPlaceHolder("Desconto")
	discountEntry.OnChanged = func(text string) {
		form.discountText = text
		refreshTotals()
	}

	dueDateEntry := widget.NewEntry()
	dueDateEntry.SetPlaceHolder("Entrega (DD/MM/AAAA)")
	dueDateEntry.OnChanged = func(text string) {
		form.dueDateText = text
		refreshDelivery()
	}

	leadTimeEntry := widget.NewEntry()
	leadTimeEntry.SetPlaceHolder("Prazo (dias)")
	leadTimeEntry.OnChanged = func(text string) {
		form.leadTimeText = text
		refreshDelivery()
	}

	commentEntry := widget.NewMultiLineEntry()
	commentEntry.SetPlaceHolder("Observações")
	commentEntry.OnChanged = func(text string) { form.comment = text }

	clientEntry.SetText(form.clientText)
	contactEntry.SetText(form.contact)
	freightEntry.SetText(form.freightText)
	discountEntry.SetText(form.discountText)
	dueDateEntry.SetText(form.dueDateText)
	leadTimeEntry.SetText(form.leadTimeText)
	commentEntry.SetText(form.comment)

	refreshClient()
	refreshTotals()
	refreshDelivery()

	itemForm := container.NewVBox(
		productEntry,
		productHint,
		container.NewGridWithColumns(3, priceEntry, colorSelect, reinforcedCheck),
		addLineBtn,
	)
	header := container.NewVBox(clientEntry, clientLabel, contactEntry, itemForm)
	footer := container.NewVBox(
		container.NewGridWithColumns(2, freightEntry, discountEntry),
		totalsLabel,
		container.NewGridWithColumns(2, dueDateEntry, leadTimeEntry),
		deliveryLabel,
		commentEntry,
	)
	content := container.NewBorder(header, footer, nil, nil, linesList)

	d := dialog.NewCustomConfirm(title, "Salvar", "Cancelar", content,
		func(submit bool) {
			if !submit {
				return
			}
			if len(form.lines) == 0 {
				dialog.ShowError(fmt.Errorf("adicione ao menos um item"), window)
				return
			}

			order := form.order(time.Now())
			var err error
			if form.editing != nil {
				err = internal.EditOrder(database, order)
			} else {
				order.ID, err = internal.SaveOrder(database, order)
			}
			if err != nil {
				log.WithError(err).WithField("order_id", order.ID).Error("error saving order")
				dialog.ShowError(err, window)
				return
			}
			log.WithFields(log.Fields{
				"order_id": order.ID,
				"edited":   form.editing != nil,
				"client":   order.ClientName,
				"total":    order.TotalPrice,
			}).Info("order saved")
			refreshTable()
		},
		window,
	)
	d.Resize(fyne.NewSize(800, 700))
	d.Show()
}

func describeLine(l engine.OrderLineItem) string {
	parts := []string{l.Description}
	if l.Color != "" {
		parts = append(parts, l.Color)
	}
	if l.Reinforced {
		parts = append(parts, "reforçado")
	}
	return strings.Join(parts, " / ") + " - " + engine.FormatBRL(l.UnitPrice)
}

// Implement showDatabaseConfigDialog using the db package helpers
func showDatabaseConfigDialog(window fyne.Window, onSaveCallback func()) {
	existingConfig, _ := db.LoadDbConfig()

	driverSelect := widget.NewSelect([]string{db.DriverSQLite, db.DriverLibSQL}, nil)
	driverSelect.SetSelected(db.DriverSQLite)
	if existingConfig.Driver != "" {
		driverSelect.SetSelected(existingConfig.Driver)
	} else if existingConfig.DatabaseURL != "" {
		driverSelect.SetSelected(db.DriverLibSQL)
	}

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("Arquivo SQLite")
	pathEntry.SetText(existingConfig.SQLitePath)

	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("Turso Database URL")
	urlEntry.SetText(existingConfig.DatabaseURL)

	tokenEntry := widget.NewPasswordEntry()
	tokenEntry.SetPlaceHolder("Turso Auth Token")
	tokenEntry.SetText(existingConfig.AuthToken)

	content := container.NewVBox(
		widget.NewLabel("Banco de dados"),
		driverSelect,
		widget.NewLabel("SQLite:"),
		pathEntry,
		widget.NewLabel("Turso URL:"),
		urlEntry,
		widget.NewLabel("Auth Token:"),
		tokenEntry,
	)

	d := dialog.NewCustomConfirm("Configuração do banco", "Salvar", "Cancelar", content,
		func(submit bool) {
			if !submit {
				if onSaveCallback != nil {
					window.Close()
				}
				return
			}

			newConfig := db.DatabaseConfig{
				Driver:      driverSelect.Selected,
				SQLitePath:  strings.TrimSpace(pathEntry.Text),
				DatabaseURL: strings.TrimSpace(urlEntry.Text),
				AuthToken:   strings.TrimSpace(tokenEntry.Text),
			}
			if err := db.SaveDbConfig(newConfig); err != nil {
				dialog.ShowError(err, window)
				return
			}

			dialog.ShowInformation("Sucesso", "Configuração salva. Reinicie para aplicar.", window)
			if onSaveCallback != nil {
				onSaveCallback()
			}
		},
		window,
	)
	d.Resize(fyne.NewSize(600, 400))
	d.Show()
}

func initializeMainApp(myWindow fyne.Window, database *sql.DB) {
	calc := engine.DeadlineCalculator{Now: time.Now}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("Produtos",
			fyne.NewMenuItem("Novo produto", func() {
				showAddProductDialog(myWindow, database)
			}),
			fyne.NewMenuItem("Gerenciar produtos", func() {
				showManageProductsDialog(myWindow, database)
			}),
		),
		fyne.NewMenu("Clientes",
			fyne.NewMenuItem("Novo cliente", func() {
				showAddClientDialog(myWindow, database)
			}),
			fyne.NewMenuItem("Gerenciar clientes", func() {
				showManageClientsDialog(myWindow, database)
			}),
		),
		fyne.NewMenu("Configurações",
			fyne.NewMenuItem("Banco de dados", func() {
				showDatabaseConfigDialog(myWindow, nil)
			}),
		),
	)
	myWindow.SetMainMenu(mainMenu)

	var orders []internal.Order

	orderTable := widget.NewTable(
		func() (int, int) { return len(orders) + 1, len(orderColumns) },
		func() fyne.CanvasObject {
			return container.NewStack(canvas.NewRectangle(color.Transparent), widget.NewLabel(""))
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			stack := cell.(*fyne.Container)
			background := stack.Objects[0].(*canvas.Rectangle)
			label := stack.Objects[1].(*widget.Label)

			background.FillColor = color.Transparent
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(orderColumns[id.Col])
				background.Refresh()
				return
			}

			label.TextStyle = fyne.TextStyle{}
			row := orderRow(orders[id.Row-1], calc)
			label.SetText(row.cells[id.Col])
			if id.Col == statusColumn {
				background.FillColor = hexColor(row.estimate.Color)
			}
			background.Refresh()
		},
	)
	for i, w := range []float32{110, 200, 260, 110, 160} {
		orderTable.SetColumnWidth(i, w)
	}

	refreshTable := func() {
		loaded, err := internal.LoadOrders(database)
		if err != nil {
			log.WithError(err).Error("error loading orders")
			return
		}
		sortByUrgency(loaded, calc)
		orders = loaded
		orderTable.Refresh()
	}

	addOrderBtn := widget.NewButton("+", func() {
		showOrderDialog(myWindow, database, calc, nil, refreshTable)
	})

	selectedRow := -1
	orderTable.OnSelected = func(id widget.TableCellID) {
		selectedRow = id.Row
	}

	completeBtn := widget.NewButton("Marcar como entregue", func() {
		if selectedRow <= 0 || selectedRow > len(orders) {
			return
		}
		orderID := orders[selectedRow-1].ID
		if err := internal.CompleteOrder(database, orderID); err != nil {
			log.WithError(err).WithField("order_id", orderID).Error("error completing order")
			return
		}
		selectedRow = -1
		refreshTable()
	})

	editBtn := widget.NewButton("Editar pedido", func() {
		if selectedRow <= 0 || selectedRow > len(orders) {
			return
		}
		order := orders[selectedRow-1]
		showOrderDialog(myWindow, database, calc, &order, refreshTable)
	})

	downloadOrdersBtn := widget.NewButton("Exportar pedidos", func() {
		saveDialog := dialog.NewFileSave(
			func(writer fyne.URIWriteCloser, err error) {
				if err != nil {
					dialog.ShowError(err, myWindow)
					return
				}
				if writer == nil {
					return // user cancelled
				}
				defer writer.Close()

				path := writer.URI().Path()
				if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
					path += ".xlsx"
				}

				if err := export.OrdersToExcel(orders, calc, path); err != nil {
					dialog.ShowError(err, myWindow)
					return
				}
				dialog.ShowInformation("Sucesso", "Pedidos exportados para:\n"+path, myWindow)
			},
			myWindow)

		saveDialog.SetFileName(fmt.Sprintf("pedidos_%s.xlsx", time.Now().Format("2006-01-02")))
		saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx"}))
		saveDialog.Show()
	})

	form := container.NewVBox(
		widget.NewLabel("Pedidos"),
		addOrderBtn,
	)

	split := container.NewHSplit(
		form,
		container.NewBorder(
			nil,
			container.NewHBox(editBtn, completeBtn, downloadOrdersBtn),
			nil,
			nil,
			orderTable,
		),
	)
	split.SetOffset(0.03)

	myWindow.SetContent(split)
	myWindow.Resize(fyne.NewSize(1024, 768))

	refreshTable()

	myWindow.SetOnClosed(func() {
		database.Close()
	})
}

// money formats a stored float the way the engine formats decimals.
func money(v float64) string {
	return engine.FormatBRL(decimal.NewFromFloat(v))
}
