package services

import (
	"errors"
	"strings"
	"sync"

	"gorm.io/gorm"

	"rms-api/models"
	"rms-api/utils/apperrors"
)

// LifecycleService is the transactional authority over the table/order/invoice
// triad. Every mutation runs under the owning table's mutex plus one database
// transaction, so the read-then-write sections (first-add order creation,
// finalize) are serialized per table while different tables never contend.
type LifecycleService struct {
	db         *gorm.DB
	tableLocks sync.Map // table id -> *sync.Mutex
}

// Lifecycle is the process-wide coordinator instance, set once at startup.
var Lifecycle *LifecycleService

func InitLifecycle(db *gorm.DB) {
	Lifecycle = NewLifecycleService(db)
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{db: db}
}

func (s *LifecycleService) lockTable(tableID uint) func() {
	v, _ := s.tableLocks.LoadOrStore(tableID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// ListTables returns every table with its active order (lines included).
func (s *LifecycleService) ListTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Preload("ActiveOrder.Lines").Order("number").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// SelectTable returns the table snapshot for the given number. Customers get
// Conflict on a table that is already Occupied or Reserved; staff may always
// look.
func (s *LifecycleService) SelectTable(role string, number int) (*models.Table, error) {
	var table models.Table
	err := s.db.Preload("ActiveOrder.Lines").Where("number = ?", number).First(&table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Table %d not found", number)
	}
	if err != nil {
		return nil, err
	}

	if role == models.RoleCustomer && table.Status != models.TableAvailable {
		return nil, apperrors.Conflict("Table %d is %s", number, strings.ToLower(table.Status))
	}
	return &table, nil
}

// GetOrCreateOrder returns the table's active order, creating an empty
// Serving order and flipping the table to Occupied when none exists. The
// second return reports whether this call created the order. Two concurrent
// calls for the same empty table resolve to one order: the second caller
// re-reads inside the critical section and gets the first caller's order
// back.
func (s *LifecycleService) GetOrCreateOrder(role string, number int) (*models.Order, bool, error) {
	var table models.Table
	err := s.db.Where("number = ?", number).First(&table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperrors.NotFound("Table %d not found", number)
	}
	if err != nil {
		return nil, false, err
	}

	unlock := s.lockTable(table.ID)
	defer unlock()

	var order models.Order
	created := false
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, table.ID).Error; err != nil {
			return err
		}

		err := tx.Preload("Lines").
			Where("table_id = ? AND status = ?", table.ID, models.OrderServing).
			First(&order).Error
		if err == nil {
			// A customer re-joining an occupied table goes through the order
			// id they already hold; a fresh customer session gets refused.
			if role == models.RoleCustomer {
				return apperrors.Conflict("Table %d is occupied", number)
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if role == models.RoleCustomer && table.Status != models.TableAvailable {
			return apperrors.Conflict("Table %d is %s", number, strings.ToLower(table.Status))
		}

		order = models.Order{TableID: table.ID, Status: models.OrderServing}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		created = true

		return tx.Model(&table).Updates(map[string]interface{}{
			"status":          models.TableOccupied,
			"active_order_id": order.ID,
		}).Error
	})
	if txErr != nil {
		return nil, false, txErr
	}
	return &order, created, nil
}

// AddItem appends or merges one menu item into the order and recomputes the
// total. Quantities are bounded, the item must exist and be available, and a
// Paid order is immutable.
func (s *LifecycleService) AddItem(orderID, itemID uint, quantity int) (*models.Order, error) {
	if quantity < models.MinLineQuantity || quantity > models.MaxLineQuantity {
		return nil, apperrors.InvalidArgument("Quantity must be between %d and %d",
			models.MinLineQuantity, models.MaxLineQuantity)
	}

	var probe models.Order
	err := s.db.First(&probe, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Order %d not found", orderID)
	}
	if err != nil {
		return nil, err
	}

	unlock := s.lockTable(probe.TableID)
	defer unlock()

	var order models.Order
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Lines").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Order %d not found", orderID)
			}
			return err
		}
		if order.Status != models.OrderServing {
			return apperrors.Conflict("Order %d is already %s", orderID, strings.ToLower(order.Status))
		}

		var item models.MenuItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Item %d not found", itemID)
			}
			return err
		}
		if !item.Available {
			return apperrors.NotFound("Item %q is not available", item.Name)
		}

		// Merge into an existing line for the same item, else snapshot a new
		// line at the catalog's current price.
		merged := false
		for i := range order.Lines {
			if order.Lines[i].ItemID == itemID {
				order.Lines[i].Quantity += quantity
				if order.Lines[i].Quantity > models.MaxLineQuantity {
					return apperrors.InvalidArgument("Line quantity for %q cannot exceed %d",
						item.Name, models.MaxLineQuantity)
				}
				if err := tx.Save(&order.Lines[i]).Error; err != nil {
					return err
				}
				merged = true
				break
			}
		}
		if !merged {
			line := models.OrderLine{
				OrderID:   order.ID,
				ItemID:    item.ID,
				Name:      item.Name,
				UnitPrice: item.Price,
				Quantity:  quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			order.Lines = append(order.Lines, line)
		}

		order.TotalPrice = order.ComputeTotal()
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_price", order.TotalPrice).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &order, nil
}

// Finalize closes a Serving order: status Paid, table freed, invoice written,
// all in one transaction. Once it commits, concurrent AddItem calls on the
// order fail with Conflict.
func (s *LifecycleService) Finalize(staffID, orderID uint, customerName, customerPhone string, tax float64) (*models.Invoice, error) {
	customerName = strings.TrimSpace(customerName)
	customerPhone = strings.TrimSpace(customerPhone)
	if customerName == "" || customerPhone == "" {
		return nil, apperrors.InvalidArgument("Customer name and phone are required")
	}
	if tax < 0 {
		return nil, apperrors.InvalidArgument("Tax cannot be negative")
	}

	var probe models.Order
	err := s.db.First(&probe, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Order %d not found", orderID)
	}
	if err != nil {
		return nil, err
	}

	unlock := s.lockTable(probe.TableID)
	defer unlock()

	var invoice models.Invoice
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Order %d not found", orderID)
			}
			return err
		}
		if order.Status != models.OrderServing {
			return apperrors.Conflict("Order %d is already %s", orderID, strings.ToLower(order.Status))
		}

		if err := tx.Model(&order).Update("status", models.OrderPaid).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Table{}).Where("id = ?", order.TableID).
			Updates(map[string]interface{}{
				"status":          models.TableAvailable,
				"active_order_id": nil,
			}).Error; err != nil {
			return err
		}

		invoice = models.Invoice{
			OrderID:       order.ID,
			CustomerName:  customerName,
			CustomerPhone: customerPhone,
			Tax:           tax,
			StaffID:       staffID,
		}
		return tx.Create(&invoice).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &invoice, nil
}

// DeleteOrder removes the order, its lines and any invoice, and frees the
// owning table.
func (s *LifecycleService) DeleteOrder(orderID uint) error {
	var probe models.Order
	err := s.db.First(&probe, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Order %d not found", orderID)
	}
	if err != nil {
		return err
	}

	unlock := s.lockTable(probe.TableID)
	defer unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Order %d not found", orderID)
			}
			return err
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Invoice{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&order).Error; err != nil {
			return err
		}

		return tx.Model(&models.Table{}).
			Where("id = ? AND active_order_id = ?", order.TableID, order.ID).
			Updates(map[string]interface{}{
				"status":          models.TableAvailable,
				"active_order_id": nil,
			}).Error
	})
}

// SetTableStatus is the manual staff override for the Available/Reserved
// flow. Occupied is owned by the order lifecycle and cannot be set by hand.
// Freeing a table that still has a Serving order is refused; the order must
// be finalized or deleted first.
func (s *LifecycleService) SetTableStatus(number int, newStatus string) (*models.Table, error) {
	switch newStatus {
	case models.TableAvailable, models.TableReserved:
	case models.TableOccupied:
		return nil, apperrors.InvalidArgument("Table status Occupied is set by the order lifecycle")
	default:
		return nil, apperrors.InvalidArgument("Unknown table status %q", newStatus)
	}

	var table models.Table
	err := s.db.Where("number = ?", number).First(&table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Table %d not found", number)
	}
	if err != nil {
		return nil, err
	}

	unlock := s.lockTable(table.ID)
	defer unlock()

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, table.ID).Error; err != nil {
			return err
		}

		if newStatus == models.TableAvailable && table.ActiveOrderID != nil {
			var serving int64
			if err := tx.Model(&models.Order{}).
				Where("id = ? AND status = ?", *table.ActiveOrderID, models.OrderServing).
				Count(&serving).Error; err != nil {
				return err
			}
			if serving > 0 {
				return apperrors.Conflict("Table %d still has a serving order", number)
			}
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.TableAvailable {
			updates["active_order_id"] = nil
		}
		if err := tx.Model(&table).Updates(updates).Error; err != nil {
			return err
		}
		table.Status = newStatus
		if newStatus == models.TableAvailable {
			table.ActiveOrderID = nil
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &table, nil
}

// GetOrder is a plain read used by the polling clients.
func (s *LifecycleService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Lines").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Order %d not found", orderID)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
