package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"pos-app/config"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Standalone low-stock alert processor. Scans every active branch for
// products at or below their minimum stock threshold and mails a digest.
// Intended to run from cron or a scheduler alongside the API server.

type lowStockRow struct {
	BranchName    string
	ItemCode      string
	ItemName      string
	SupplierName  string
	MinStockAlert int
	QtyOnhand     int
}

func fetchLowStock(db *gorm.DB) ([]lowStockRow, error) {
	sqlLow := `select b.name as branch_name, p.item_code, p.item_name,
	coalesce(sp.name, '-') as supplier_name,
	p.min_stock_alert, coalesce(s.qty_onhand, 0) as qty_onhand
	from products p
	cross join branches b
	left join stock_entries s on s.product_id = p.id and s.branch_id = b.id and s.deleted_at is null
	left join suppliers sp on sp.id = p.supplier_id
	where p.deleted_at is null and b.deleted_at is null and b.is_active = ?
	and p.min_stock_alert > 0
	and coalesce(s.qty_onhand, 0) <= p.min_stock_alert
	order by b.name, p.item_code`

	var rows []lowStockRow
	if err := db.Raw(sqlLow, true).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func buildDigest(rows []lowStockRow) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	sb.WriteString("<h3>Low Stock Alert</h3>")
	sb.WriteString("<table border=\"1\" cellpadding=\"4\">")
	sb.WriteString("<tr><th>Branch</th><th>Item Code</th><th>Item Name</th><th>Supplier</th><th>Min Stock</th><th>Qty Onhand</th></tr>")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%d</td></tr>",
			row.BranchName, row.ItemCode, row.ItemName, row.SupplierName, row.MinStockAlert, row.QtyOnhand))
	}
	sb.WriteString("</table>")
	sb.WriteString("<p>This is an auto-generated email. Please do not reply.</p>")
	sb.WriteString("</body></html>")
	return sb.String()
}

func sendEmailNotification(toEmails []string, body string) error {
	subject := fmt.Sprintf("📦 Low Stock Alert %s", time.Now().Format("2006-01-02"))

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Failed to send email:", err)
		return err
	}

	fmt.Println("✅ Alert email sent to:", toEmails)
	return nil
}

func main() {
	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	fmt.Println("🚀 Low stock processor running...")

	rows, err := fetchLowStock(db)
	if err != nil {
		log.Fatalf("Failed to fetch low stock data: %v", err)
	}

	if len(rows) == 0 {
		fmt.Println("No products below minimum stock, nothing to send")
		return
	}

	if config.AlertMailTo == "" {
		fmt.Println("ALERT_MAIL_TO not configured, skipping email")
		return
	}

	recipients := strings.Split(config.AlertMailTo, ",")
	for i := range recipients {
		recipients[i] = strings.TrimSpace(recipients[i])
	}

	if err := sendEmailNotification(recipients, buildDigest(rows)); err != nil {
		log.Fatalf("Failed to send alert: %v", err)
	}

	fmt.Println("✅ Done")
}
