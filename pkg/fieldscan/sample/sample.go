// Package sample generates a multi-worksheet demo workbook for testing
// the analyzer end to end.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/xuri/excelize/v2"
)

const rowsPerSheet = 25

type sheetSpec struct {
	name    string
	headers []string
	cell    func(rng *rand.Rand, header string, row int) interface{}
}

// Generate writes a deterministic five-sheet sample workbook to path. The
// sheets share overlapping header sets (Purchase Order, Product, ...) so
// the resulting analysis has universal, common, and unique fields.
func Generate(path string) error {
	rng := rand.New(rand.NewSource(42))

	specs := []sheetSpec{
		{
			name: "Orders",
			headers: []string{
				"Purchase Order", "Order Details", "Due Date", "Product", "Description",
				"Quantity", "Unit Price", "Total Price", "Customer", "Shipping Code",
			},
			cell: orderCell,
		},
		{
			name: "Production",
			headers: []string{
				"Purchase Order", "Product", "Build Time", "Cut Time", "Man Mins",
				"Total Man Mins", "Built By", "Build Information", "Production Date", "Status",
			},
			cell: productionCell,
		},
		{
			name: "Shipping",
			headers: []string{
				"Purchase Order", "Product", "Shipping Code", "Carrier", "Tracking Number",
				"Ship Date", "Delivery Date", "Customer", "Address",
			},
			cell: shippingCell,
		},
		{
			name: "Inventory",
			headers: []string{
				"Product", "Description", "Category", "Stock Level", "Reorder Point",
				"Unit Cost", "Supplier", "Last Updated",
			},
			cell: inventoryCell,
		},
		{
			name: "Customers",
			headers: []string{
				"Customer ID", "Customer Name", "Email", "Phone", "Address",
				"Registration Date", "Total Orders", "Total Spent",
			},
			cell: customerCell,
		},
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, spec := range specs {
		if _, err := f.NewSheet(spec.name); err != nil {
			return err
		}
		for col, header := range spec.headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(spec.name, cell, header); err != nil {
				return err
			}
		}
		for row := 0; row < rowsPerSheet; row++ {
			for col, header := range spec.headers {
				cell, err := excelize.CoordinatesToCellName(col+1, row+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(spec.name, cell, spec.cell(rng, header, row)); err != nil {
					return err
				}
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func orderCell(rng *rand.Rand, header string, row int) interface{} {
	switch header {
	case "Purchase Order":
		return fmt.Sprintf("PO-%04d", row+1)
	case "Order Details":
		return fmt.Sprintf("Order %d", row+1)
	case "Due Date":
		return date(rng)
	case "Product":
		return product(row)
	case "Description":
		return fmt.Sprintf("Description for product %d", row+1)
	case "Quantity":
		return rng.Intn(50) + 1
	case "Unit Price":
		return money(rng, 10, 500)
	case "Total Price":
		return money(rng, 100, 5000)
	case "Customer":
		return fmt.Sprintf("Customer %d", row+1)
	default: // Shipping Code
		return fmt.Sprintf("SHIP-%04d", rng.Intn(9000)+1000)
	}
}

func productionCell(rng *rand.Rand, header string, row int) interface{} {
	switch header {
	case "Purchase Order":
		return fmt.Sprintf("PO-%04d", row+1)
	case "Product":
		return product(row)
	case "Build Time":
		return rng.Intn(8) + 1
	case "Cut Time":
		return rng.Intn(4) + 1
	case "Man Mins":
		return rng.Intn(450) + 30
	case "Total Man Mins":
		return rng.Intn(900) + 60
	case "Built By":
		return fmt.Sprintf("Worker %d", rng.Intn(10)+1)
	case "Build Information":
		return fmt.Sprintf("Build info %d", row+1)
	case "Production Date":
		return date(rng)
	default: // Status
		return []string{"In Progress", "Completed", "Pending"}[rng.Intn(3)]
	}
}

func shippingCell(rng *rand.Rand, header string, row int) interface{} {
	switch header {
	case "Purchase Order":
		return fmt.Sprintf("PO-%04d", row+1)
	case "Product":
		return product(row)
	case "Shipping Code":
		return fmt.Sprintf("SHIP-%04d", rng.Intn(9000)+1000)
	case "Carrier":
		return []string{"APC", "DX", "Van", "Royal Mail"}[rng.Intn(4)]
	case "Tracking Number":
		return fmt.Sprintf("TRK%06d", rng.Intn(900000)+100000)
	case "Ship Date", "Delivery Date":
		return date(rng)
	case "Customer":
		return fmt.Sprintf("Customer %d", row+1)
	default: // Address
		return fmt.Sprintf("Address %d, City, Postcode", row+1)
	}
}

func inventoryCell(rng *rand.Rand, header string, row int) interface{} {
	switch header {
	case "Product":
		return product(row)
	case "Description":
		return fmt.Sprintf("Description for product %d", row+1)
	case "Category":
		return []string{"Electronics", "Clothing", "Books", "Home"}[rng.Intn(4)]
	case "Stock Level":
		return rng.Intn(1000)
	case "Reorder Point":
		return rng.Intn(90) + 10
	case "Unit Cost":
		return money(rng, 5, 200)
	case "Supplier":
		return fmt.Sprintf("Supplier %d", rng.Intn(20)+1)
	default: // Last Updated
		return date(rng)
	}
}

func customerCell(rng *rand.Rand, header string, row int) interface{} {
	switch header {
	case "Customer ID":
		return fmt.Sprintf("CUST-%04d", row+1)
	case "Customer Name":
		return fmt.Sprintf("Customer %d", row+1)
	case "Email":
		return fmt.Sprintf("customer%d@example.com", row+1)
	case "Phone":
		return fmt.Sprintf("+44 %09d", rng.Intn(900000000)+100000000)
	case "Address":
		return fmt.Sprintf("Address %d, City, Postcode", row+1)
	case "Registration Date":
		return date(rng)
	case "Total Orders":
		return rng.Intn(50) + 1
	default: // Total Spent
		return money(rng, 100, 10000)
	}
}

func product(row int) string {
	return fmt.Sprintf("Product %c%d", 'A'+row%26, row/26+1)
}

func date(rng *rand.Rand) string {
	return fmt.Sprintf("2026-%02d-%02d", rng.Intn(12)+1, rng.Intn(28)+1)
}

func money(rng *rand.Rand, lo, hi float64) float64 {
	v := lo + rng.Float64()*(hi-lo)
	return float64(int(v*100)) / 100
}
