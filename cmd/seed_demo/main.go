// seed_demo genera un script SQL con un tenant de demostración (productos, stock, pedidos,
// facturas y órdenes de compra) y emite un JWT de desarrollo para consultarlo.
//
// Uso: go run ./cmd/seed_demo [YYYY-MM-DD]
// La fecha de referencia (default: hoy) ancla los meses de la tendencia y la antigüedad de cartera.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/health-analytics-api/pkg/config"
	"github.com/jhoicas/health-analytics-api/pkg/jwt"
)

// demoNamespace raíz de los UUID deterministas del dataset.
var demoNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://health-analytics.local/demo"))

type demoProduct struct {
	sku, name           string
	cost, price, minQty int64
	stock               int64
	status              string
}

var demoProducts = []demoProduct{
	{"CAF-500", "Café tostado 500g", 14000, 22000, 40, 12, "ACTIVE"},
	{"CAF-250", "Café tostado 250g", 7800, 12500, 60, 25, "ACTIVE"},
	{"AZU-1K", "Azúcar 1kg", 3200, 4500, 80, 300, "ACTIVE"},
	{"HAR-1K", "Harina de trigo 1kg", 2900, 4200, 50, 160, "ACTIVE"},
	{"ACE-1L", "Aceite vegetal 1L", 8900, 12900, 30, 75, "ACTIVE"},
	{"ARZ-5K", "Arroz 5kg", 16500, 23900, 25, 20, "ACTIVE"},
	{"LEC-1L", "Leche entera 1L", 3100, 4300, 120, 130, "ACTIVE"},
	{"CHO-100", "Chocolate 100g", 4200, 6900, 20, 95, "ACTIVE"},
	{"TE-20", "Té verde x20", 5100, 8500, 15, 70, "ACTIVE"},
	{"GAL-300", "Galletas surtidas 300g", 4600, 7200, 40, 35, "ACTIVE"},
	{"MER-250", "Mermelada 250g", 5800, 9400, 10, 0, "INACTIVE"},
	{"SAL-1K", "Sal refinada 1kg", 1200, 2100, 30, 210, "DISCONTINUED"},
}

func main() {
	ref := time.Now().UTC()
	if len(os.Args) > 1 {
		t, err := time.Parse("2006-01-02", os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fecha inválida (YYYY-MM-DD): %v\n", err)
			os.Exit(1)
		}
		ref = t
	}
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 12, 0, 0, 0, time.UTC)

	companyID := demoID("company")
	warehouseID := demoID("warehouse")
	rng := rand.New(rand.NewSource(20240601))

	var sb strings.Builder
	sb.WriteString("-- Tenant de demostración para el reporte avanzado\n")
	fmt.Fprintf(&sb, "-- Generado por cmd/seed_demo con fecha de referencia %s\n", ref.Format("2006-01-02"))
	fmt.Fprintf(&sb, "-- company_id: %s\n\n", companyID)

	sb.WriteString("-- 1. Productos y stock\n")
	for _, p := range demoProducts {
		id := demoID("product/" + p.sku)
		fmt.Fprintf(&sb, "INSERT INTO products (id, company_id, sku, name, price, cost, tax_rate, reorder_point, status)\n")
		fmt.Fprintf(&sb, "VALUES ('%s', '%s', '%s', '%s', %d, %d, 0.19, %d, '%s') ON CONFLICT (id) DO NOTHING;\n",
			id, companyID, p.sku, escapeSQL(p.name), p.price, p.cost, p.minQty, p.status)
		fmt.Fprintf(&sb, "INSERT INTO stock (product_id, warehouse_id, quantity) VALUES ('%s', '%s', %d)\n", id, warehouseID, p.stock)
		sb.WriteString("ON CONFLICT (product_id, warehouse_id) DO UPDATE SET quantity = EXCLUDED.quantity;\n")
	}

	// Pedidos: seis meses hacia atrás, volumen creciente y ~85 % pagados.
	sb.WriteString("\n-- 2. Pedidos\n")
	statuses := []string{"Paid", "Paid", "Paid", "Paid", "Paid", "Paid", "Pending", "Refunded"}
	orders := 0
	for back := 5; back >= 0; back-- {
		monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -back, 0)
		days := daysIn(monthStart)
		if back == 0 {
			days = ref.Day()
		}
		count := 8 + (5-back)*2
		for n := 0; n < count; n++ {
			orderDate := monthStart.AddDate(0, 0, rng.Intn(days)).Add(time.Duration(8+rng.Intn(10)) * time.Hour)
			amount := decimal.NewFromInt(int64(50000 + rng.Intn(450000)))
			fmt.Fprintf(&sb, "INSERT INTO orders (id, company_id, order_date, total_amount, payment_status) VALUES ('%s', '%s', '%s', %s, '%s') ON CONFLICT (id) DO NOTHING;\n",
				demoID(fmt.Sprintf("order/%d/%d", back, n)), companyID, orderDate.Format(time.RFC3339), amount.StringFixed(2), statuses[rng.Intn(len(statuses))])
			orders++
		}
	}

	// Facturas: antigüedad en días respecto a la fecha de referencia.
	sb.WriteString("\n-- 3. Facturas\n")
	invoices := []struct {
		daysOld int
		status  string
		net     int64
	}{
		{3, "Sent", 1250000}, {12, "Sent", 860000}, {25, "Paid", 2300000}, {34, "Sent", 540000},
		{45, "Overdue", 1120000}, {58, "Paid", 1980000}, {75, "Overdue", 730000}, {96, "Overdue", 415000},
		{5, "Draft", 300000}, {40, "Cancelled", 220000},
	}
	for n, inv := range invoices {
		net := decimal.NewFromInt(inv.net)
		tax := net.Mul(decimal.RequireFromString("0.19")).Round(2)
		fmt.Fprintf(&sb, "INSERT INTO invoices (id, company_id, date, payment_status, net_total, tax_total, grand_total) VALUES ('%s', '%s', '%s', '%s', %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			demoID(fmt.Sprintf("invoice/%d", n)), companyID, ref.AddDate(0, 0, -inv.daysOld).Format(time.RFC3339), inv.status,
			net.StringFixed(2), tax.StringFixed(2), net.Add(tax).StringFixed(2))
	}

	sb.WriteString("\n-- 4. Órdenes de compra\n")
	purchaseOrders := []struct {
		status string
		total  int64
	}{
		{"Pending", 1450000}, {"Confirmed", 2100000}, {"Received", 3900000}, {"Draft", 600000}, {"Cancelled", 800000},
	}
	for n, po := range purchaseOrders {
		fmt.Fprintf(&sb, "INSERT INTO purchase_orders (id, company_id, status, total_amount) VALUES ('%s', '%s', '%s', %d.00) ON CONFLICT (id) DO NOTHING;\n",
			demoID(fmt.Sprintf("purchase_order/%d", n)), companyID, po.status, po.total)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	if err := os.WriteFile(outPath, []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir archivo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos, %d pedidos, %d facturas, %d órdenes de compra\n",
		outPath, len(demoProducts), orders, len(invoices), len(purchaseOrders))
	fmt.Printf("company_id: %s\n", companyID)

	printDevToken(companyID)
}

// printDevToken emite un JWT de desarrollo si JWT_SECRET está configurado.
func printDevToken(companyID uuid.UUID) {
	cfg, err := config.Load()
	if err != nil || cfg.JWT.Secret == "" {
		fmt.Println("JWT_SECRET no configurado: no se emite token de desarrollo")
		return
	}
	token, err := jwt.Generate(cfg.JWT.Secret, demoID("user").String(), companyID.String(), cfg.JWT.Issuer, 24*60)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		return
	}
	fmt.Printf("Authorization: Bearer %s\n", token)
}

func demoID(name string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte(name))
}

func daysIn(monthStart time.Time) int {
	return monthStart.AddDate(0, 1, -1).Day()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
